package model

import (
	"time"

	"github.com/google/uuid"
)

type EmailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

type EmailStatus string

const (
	EmailStatusPending EmailStatus = "pending"
	EmailStatusSent    EmailStatus = "sent"
	EmailStatusFailed  EmailStatus = "failed"
)

type QueuedEmail struct {
	ID        uuid.UUID    `json:"id"`
	Message   EmailMessage `json:"message"`
	Status    EmailStatus  `json:"status"`
	Attempts  int32        `json:"attempts"`
	LastError *string      `json:"last_error,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// UserNotification is a message meant for the customer's notification area.
type UserNotification struct {
	UserID  string `json:"user_id,omitempty"`
	Level   string `json:"level"`
	Message string `json:"message"`
}
