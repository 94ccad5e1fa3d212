package repository

import (
	"context"
	"log/slog"

	"walletsync/internal/walletservice/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionPGRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewTransactionPGRepository(pool *pgxpool.Pool, logger *slog.Logger) *TransactionPGRepository {
	return &TransactionPGRepository{
		pool:   pool,
		logger: logger,
	}
}

// Append persists one immutable ledger entry. Amount and type are
// validated by the caller.
func (r *TransactionPGRepository) Append(ctx context.Context, userID uuid.UUID, txType models.TransactionType, amount int64) (models.Transaction, error) {
	var tx models.Transaction
	err := r.pool.QueryRow(ctx, `
		INSERT INTO transactions (user_id, type, amount) VALUES ($1, $2, $3)
		RETURNING id, user_id, type, amount, created_at, updated_at`,
		userID, txType, amount,
	).Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Amount, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to insert transaction",
			slog.String("user_id", userID.String()),
			slog.String("type", string(txType)),
			slog.Int64("amount", amount),
			slog.Any("err", err),
		)
		return models.Transaction{}, err
	}
	return tx, nil
}

// ListByUser returns the user's entries newest first, optionally
// filtered by type. No entries is an empty slice, not an error.
func (r *TransactionPGRepository) ListByUser(ctx context.Context, userID uuid.UUID, typeFilter models.TransactionType) ([]models.Transaction, error) {
	query := "SELECT id, user_id, type, amount, created_at, updated_at FROM transactions WHERE user_id = $1"
	args := []any{userID}
	if typeFilter != "" {
		query += " AND type = $2"
		args = append(args, typeFilter)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list transactions",
			slog.String("user_id", userID.String()),
			slog.Any("err", err),
		)
		return nil, err
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Amount, &tx.CreatedAt, &tx.UpdatedAt); err != nil {
			r.logger.Error("Failed to scan transaction row",
				slog.String("user_id", userID.String()),
				slog.Any("err", err),
			)
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return transactions, nil
}

// SumByType aggregates amounts grouped by type. Types with no entries
// are absent from the map; callers treat them as 0.
func (r *TransactionPGRepository) SumByType(ctx context.Context, userID uuid.UUID) (map[models.TransactionType]int64, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT type, SUM(amount) FROM transactions WHERE user_id = $1 GROUP BY type",
		userID,
	)
	if err != nil {
		r.logger.Error("Failed to sum transactions by type",
			slog.String("user_id", userID.String()),
			slog.Any("err", err),
		)
		return nil, err
	}
	defer rows.Close()

	sums := make(map[models.TransactionType]int64)
	for rows.Next() {
		var txType models.TransactionType
		var sum int64
		if err := rows.Scan(&txType, &sum); err != nil {
			r.logger.Error("Failed to scan aggregate row",
				slog.String("user_id", userID.String()),
				slog.Any("err", err),
			)
			return nil, err
		}
		sums[txType] = sum
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sums, nil
}
