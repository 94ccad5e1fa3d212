package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"walletsync/internal/walletservice/models"
	"walletsync/internal/walletservice/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=transaction_service.go -destination=../../../test/mock_wallet_repositories.go -package=test TransactionRepository,WalletUserRepository

// MaxTransactionAmount is the admission ceiling for a single entry, in
// cents.
const MaxTransactionAmount int64 = 9007199254740991

var (
	ErrUserNotValid = errors.New("User Not Valid")

	ErrAmountExceedsMax = fmt.Errorf(
		"Amount exceeds maximum allowed value of %d cents (%s dollars)",
		MaxTransactionAmount,
		decimal.NewFromInt(MaxTransactionAmount).Div(decimal.NewFromInt(100)).StringFixed(2),
	)
)

type TransactionRepository interface {
	Append(ctx context.Context, userID uuid.UUID, txType models.TransactionType, amount int64) (models.Transaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID, typeFilter models.TransactionType) ([]models.Transaction, error)
	SumByType(ctx context.Context, userID uuid.UUID) (map[models.TransactionType]int64, error)
}

type WalletUserRepository interface {
	Create(ctx context.Context, externalUserID uuid.UUID) (models.WalletUser, error)
	FindByExternalID(ctx context.Context, externalUserID uuid.UUID) (models.WalletUser, error)
}

type TransactionService struct {
	repo   TransactionRepository
	users  WalletUserRepository
	logger *slog.Logger
}

func NewTransactionService(repo TransactionRepository, users WalletUserRepository, logger *slog.Logger) *TransactionService {
	return &TransactionService{
		repo:   repo,
		users:  users,
		logger: logger,
	}
}

// CreateTransaction admits one ledger entry. The registry lookup runs
// before the amount bound check: an unknown user always reports
// ErrUserNotValid even when the amount is also out of policy.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID uuid.UUID, txType models.TransactionType, amount int64) (models.Transaction, error) {
	_, err := s.users.FindByExternalID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrWalletUserNotFound) {
			s.logger.Warn("Transaction rejected: unknown wallet user",
				slog.String("user_id", userID.String()),
			)
			return models.Transaction{}, ErrUserNotValid
		}
		return models.Transaction{}, err
	}

	if amount > MaxTransactionAmount {
		s.logger.Warn("Transaction rejected: amount exceeds maximum",
			slog.String("user_id", userID.String()),
			slog.Int64("amount", amount),
		)
		return models.Transaction{}, ErrAmountExceedsMax
	}

	tx, err := s.repo.Append(ctx, userID, txType, amount)
	if err != nil {
		s.logger.Error("Failed to append transaction",
			slog.String("user_id", userID.String()),
			slog.String("type", string(txType)),
			slog.Int64("amount", amount),
			slog.Any("err", err),
		)
		return models.Transaction{}, err
	}
	return tx, nil
}

func (s *TransactionService) ListTransactions(ctx context.Context, userID uuid.UUID, typeFilter models.TransactionType) ([]models.Transaction, error) {
	transactions, err := s.repo.ListByUser(ctx, userID, typeFilter)
	if err != nil {
		s.logger.Error("Failed to list transactions",
			slog.String("user_id", userID.String()),
			slog.Any("err", err),
		)
		return nil, err
	}
	return transactions, nil
}

// CalculateBalance derives the signed balance: credit sum minus debit
// sum, each 0 when that type has no entries. Integer arithmetic only;
// negative results are valid.
func (s *TransactionService) CalculateBalance(ctx context.Context, userID uuid.UUID) (int64, error) {
	sums, err := s.repo.SumByType(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to calculate balance",
			slog.String("user_id", userID.String()),
			slog.Any("err", err),
		)
		return 0, err
	}
	return sums[models.TransactionTypeCredit] - sums[models.TransactionTypeDebit], nil
}
