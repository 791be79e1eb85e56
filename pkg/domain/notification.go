package domain

import "time"

// NotificationJob is the payload of a single per-recipient notification
type NotificationJob struct {
	RecipientID string   `json:"recipient_id"`
	PostID      string   `json:"post_id"`
	AuthorID    string   `json:"author_id"`
	Keywords    []string `json:"keywords"`
	Rank        int64    `json:"rank"`
}

// IngestJob asks for a solved post to be added to the knowledge index
type IngestJob struct {
	PostID string `json:"post_id"`
}

// DeliveryStatus represents the terminal state of a notification job
type DeliveryStatus string

const (
	StatusDelivered  DeliveryStatus = "delivered"
	StatusSuppressed DeliveryStatus = "suppressed"
	StatusFailed     DeliveryStatus = "failed"
)

// NotificationLogEntry records the outcome of a processed notification job
type NotificationLogEntry struct {
	JobID       string
	RecipientID string
	PostID      string
	Status      DeliveryStatus
	Error       string
	CreatedAt   time.Time
}
