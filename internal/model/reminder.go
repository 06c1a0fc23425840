package model

import "time"

type Reminder struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Title     string    `json:"title"`
	Time      time.Time `json:"time"`
	Recurring bool      `json:"recurring"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

type EmergencyContact struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"-"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Relationship string    `json:"relationship,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type ChatMessage struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
