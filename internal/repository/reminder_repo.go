package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"echocare/internal/model"
)

type ReminderRepository struct {
	pool *pgxpool.Pool
}

func NewReminderRepository(pool *pgxpool.Pool) *ReminderRepository {
	return &ReminderRepository{pool: pool}
}

func (r *ReminderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Reminder, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, title, time, recurring, completed, created_at
		 FROM reminders WHERE user_id = $1 ORDER BY time ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	defer rows.Close()

	reminders := make([]model.Reminder, 0)
	for rows.Next() {
		var rem model.Reminder
		if err := rows.Scan(&rem.ID, &rem.UserID, &rem.Title, &rem.Time,
			&rem.Recurring, &rem.Completed, &rem.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

func (r *ReminderRepository) Create(ctx context.Context, rem model.Reminder) (model.Reminder, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO reminders (user_id, title, time, recurring)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, completed, created_at`,
		rem.UserID, rem.Title, rem.Time, rem.Recurring).
		Scan(&rem.ID, &rem.Completed, &rem.CreatedAt)
	if err != nil {
		return model.Reminder{}, fmt.Errorf("create reminder: %w", err)
	}
	return rem, nil
}

// MarkCompleted sets the completed flag on a reminder owned by userID. The
// ownership check lives in the WHERE clause so a foreign reminder id is
// indistinguishable from a missing one.
func (r *ReminderRepository) MarkCompleted(ctx context.Context, userID int64, reminderID int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE reminders SET completed = true WHERE id = $1 AND user_id = $2`,
		reminderID, userID)
	if err != nil {
		return fmt.Errorf("complete reminder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrReminderNotFound
	}
	return nil
}
