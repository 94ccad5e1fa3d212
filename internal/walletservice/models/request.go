package models

import "github.com/google/uuid"

type CreateWalletUserRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

type CreateTransactionRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
	Type   string    `json:"type" binding:"required,oneof=CREDIT DEBIT"`
	Amount int64     `json:"amount" binding:"required,gt=0"`
}

type ListTransactionsQuery struct {
	UserID string `form:"user_id" binding:"required,uuid"`
	Type   string `form:"type" binding:"omitempty,oneof=CREDIT DEBIT"`
}
