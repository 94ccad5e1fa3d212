package models

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionTypeCredit TransactionType = "CREDIT"
	TransactionTypeDebit  TransactionType = "DEBIT"
)

// WalletUser links an identity owned by the user service to this
// service's records. At most one row exists per external user id.
type WalletUser struct {
	ID             uuid.UUID `db:"id" json:"id"`
	ExternalUserID uuid.UUID `db:"external_user_id" json:"external_user_id"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// Transaction is one immutable signed movement of value, in integer
// minor currency units (cents).
type Transaction struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	UserID    uuid.UUID       `db:"user_id" json:"user_id"`
	Type      TransactionType `db:"type" json:"type"`
	Amount    int64           `db:"amount" json:"amount"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `db:"updated_at" json:"updatedAt"`
}
