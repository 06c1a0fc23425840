package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"echocare/internal/model"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) ListByUser(ctx context.Context, userID int64) ([]model.EmergencyContact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name, phone, COALESCE(relationship, ''), created_at
		 FROM emergency_contacts WHERE user_id = $1 ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list emergency contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]model.EmergencyContact, 0)
	for rows.Next() {
		var c model.EmergencyContact
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Phone, &c.Relationship, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan emergency contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *ContactRepository) Create(ctx context.Context, c model.EmergencyContact) (model.EmergencyContact, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO emergency_contacts (user_id, name, phone, relationship)
		 VALUES ($1, $2, $3, NULLIF($4, ''))
		 RETURNING id, created_at`,
		c.UserID, c.Name, c.Phone, c.Relationship).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return model.EmergencyContact{}, fmt.Errorf("create emergency contact: %w", err)
	}
	return c, nil
}
