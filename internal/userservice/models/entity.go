package models

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTypeUserCreated        EventType = "USER_CREATED"
	EventTypeTransactionCreated EventType = "TRANSACTION_CREATED"
)

type OutboxStatus string

const (
	OutboxStatusPending   OutboxStatus = "PENDING"
	OutboxStatusCompleted OutboxStatus = "COMPLETED"
	OutboxStatusFailed    OutboxStatus = "FAILED"
)

type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"-"`
	FirstName string    `db:"first_name" json:"firstName"`
	LastName  string    `db:"last_name" json:"lastName"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// OutboxEntry pairs a local write with the recorded outcome of the
// matching wallet-service call. Status only ever moves forward
// (PENDING to COMPLETED or FAILED); nothing in the request path
// re-processes an entry. Payload is event-type-specific and round-trips
// through jsonb untouched.
type OutboxEntry struct {
	ID        uuid.UUID      `db:"id" json:"id"`
	UserID    uuid.UUID      `db:"user_id" json:"userId"`
	EventType EventType      `db:"event_type" json:"eventType"`
	Status    OutboxStatus   `db:"status" json:"status"`
	Payload   map[string]any `db:"payload" json:"payload"`
	CreatedAt time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time      `db:"updated_at" json:"updatedAt"`
}
