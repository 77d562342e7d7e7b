package models

import "time"

type Notification struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Status    string    `json:"status"` // "unread" or "read"
	CreatedAt time.Time `json:"createdAt"`
}
