package models

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateTransactionRequest struct {
	Type   string `json:"type" binding:"required,oneof=CREDIT DEBIT"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

type AuthResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Token     string    `json:"token"`
}

type UserWithBalance struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Balance   *int64    `json:"balance"`
}

// WalletTransaction is the wallet service's wire shape for a ledger
// entry.
type WalletTransaction struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Type      string    `json:"type"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type WalletTransactionRequest struct {
	UserID uuid.UUID `json:"user_id"`
	Type   string    `json:"type"`
	Amount int64     `json:"amount"`
}

// BalanceResponse carries the wallet-held balance; Amount is nil when
// the wallet service could not be reached, rendered as null so callers
// can show "balance unknown".
type BalanceResponse struct {
	Amount *int64 `json:"amount"`
}

type TransactionsResponse struct {
	Transactions []WalletTransaction `json:"transactions"`
}
