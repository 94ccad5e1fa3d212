package repository

import (
	"context"
	"errors"
	"log/slog"

	"walletsync/internal/walletservice/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrWalletUserNotFound = errors.New("wallet user not found")
	ErrWalletUserExists   = errors.New("wallet user already exists")
)

type WalletUserPGRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewWalletUserPGRepository(pool *pgxpool.Pool, logger *slog.Logger) *WalletUserPGRepository {
	return &WalletUserPGRepository{
		pool:   pool,
		logger: logger,
	}
}

// Create inserts a wallet user row. The UNIQUE constraint on
// external_user_id resolves concurrent creations; the loser gets
// ErrWalletUserExists and is expected to re-read.
func (r *WalletUserPGRepository) Create(ctx context.Context, externalUserID uuid.UUID) (models.WalletUser, error) {
	var user models.WalletUser
	err := r.pool.QueryRow(ctx, `
		INSERT INTO wallet_users (external_user_id) VALUES ($1)
		RETURNING id, external_user_id, created_at`,
		externalUserID,
	).Scan(&user.ID, &user.ExternalUserID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.WalletUser{}, ErrWalletUserExists
		}
		r.logger.Error("Failed to create wallet user",
			slog.String("external_user_id", externalUserID.String()),
			slog.Any("err", err),
		)
		return models.WalletUser{}, err
	}
	return user, nil
}

func (r *WalletUserPGRepository) FindByExternalID(ctx context.Context, externalUserID uuid.UUID) (models.WalletUser, error) {
	var user models.WalletUser
	err := r.pool.QueryRow(ctx,
		"SELECT id, external_user_id, created_at FROM wallet_users WHERE external_user_id = $1",
		externalUserID,
	).Scan(&user.ID, &user.ExternalUserID, &user.CreatedAt)
	if err == pgx.ErrNoRows {
		return models.WalletUser{}, ErrWalletUserNotFound
	}
	if err != nil {
		r.logger.Error("Failed to find wallet user",
			slog.String("external_user_id", externalUserID.String()),
			slog.Any("err", err),
		)
		return models.WalletUser{}, err
	}
	return user, nil
}
