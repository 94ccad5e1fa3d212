package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"walletsync/internal/userservice/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrOutboxEntryNotFound = errors.New("outbox entry not found")

type OutboxPGRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewOutboxPGRepository(pool *pgxpool.Pool, logger *slog.Logger) *OutboxPGRepository {
	return &OutboxPGRepository{
		pool:   pool,
		logger: logger,
	}
}

// Create writes an entry with its final initial status. User
// registration records the sync outcome this way: COMPLETED when the
// wallet call already succeeded, PENDING when it failed.
func (r *OutboxPGRepository) Create(ctx context.Context, userID uuid.UUID, eventType models.EventType, payload map[string]any, status models.OutboxStatus) (models.OutboxEntry, error) {
	var entry models.OutboxEntry
	err := r.pool.QueryRow(ctx, `
		INSERT INTO wallet_outbox (user_id, event_type, payload, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, event_type, status, payload, created_at, updated_at`,
		userID, eventType, payload, status,
	).Scan(&entry.ID, &entry.UserID, &entry.EventType, &entry.Status, &entry.Payload, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create outbox entry",
			slog.String("user_id", userID.String()),
			slog.String("event_type", string(eventType)),
			slog.Any("err", err),
		)
		return models.OutboxEntry{}, err
	}
	return entry, nil
}

// CreateIntent writes a PENDING entry inside its own transaction and
// returns the id. The commit happens before any external call is made,
// so a durable trace of intent exists even if the process dies right
// after.
func (r *OutboxPGRepository) CreateIntent(ctx context.Context, userID uuid.UUID, eventType models.EventType, payload map[string]any) (uuid.UUID, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		r.logger.Error("Failed to begin outbox transaction",
			slog.String("user_id", userID.String()),
			slog.Any("err", err),
		)
		return uuid.Nil, err
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
			r.logger.Error("Failed to rollback outbox transaction",
				slog.String("user_id", userID.String()),
				slog.Any("err", err),
			)
		}
	}()

	var id uuid.UUID
	err = tx.QueryRow(ctx, `
		INSERT INTO wallet_outbox (user_id, event_type, payload, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		userID, eventType, payload, models.OutboxStatusPending,
	).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to insert outbox intent",
			slog.String("user_id", userID.String()),
			slog.String("event_type", string(eventType)),
			slog.Any("err", err),
		)
		return uuid.Nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("Failed to commit outbox intent",
			slog.String("user_id", userID.String()),
			slog.Any("err", err),
		)
		return uuid.Nil, err
	}
	return id, nil
}

// UpdateStatus advances a PENDING entry forward. The status guard in
// the WHERE clause makes transitions monotonic at the database: a
// settled entry can never move again, and when the request path and the
// relay race only one writer wins. The loser sees
// ErrOutboxEntryNotFound.
func (r *OutboxPGRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OutboxStatus) error {
	tag, err := r.pool.Exec(ctx,
		"UPDATE wallet_outbox SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3",
		status, id, models.OutboxStatusPending,
	)
	if err != nil {
		r.logger.Error("Failed to update outbox status",
			slog.String("outbox_id", id.String()),
			slog.String("status", string(status)),
			slog.Any("err", err),
		)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOutboxEntryNotFound
	}
	return nil
}

// FindPendingBefore returns PENDING entries created before the cutoff,
// oldest first. The cutoff keeps the relay away from intents whose
// originating request may still be executing.
func (r *OutboxPGRepository) FindPendingBefore(ctx context.Context, cutoff time.Time) ([]models.OutboxEntry, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT id, user_id, event_type, status, payload, created_at, updated_at FROM wallet_outbox WHERE status = $1 AND created_at < $2 ORDER BY created_at",
		models.OutboxStatusPending, cutoff,
	)
	if err != nil {
		r.logger.Error("Failed to query pending outbox entries",
			slog.Any("err", err),
		)
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.OutboxEntry, 0)
	for rows.Next() {
		var entry models.OutboxEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.EventType, &entry.Status, &entry.Payload, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
			r.logger.Error("Failed to scan outbox row", slog.Any("err", err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// FindByStatus returns entries in the given status, optionally
// restricted to one event type. Used by manual reconciliation tooling.
func (r *OutboxPGRepository) FindByStatus(ctx context.Context, status models.OutboxStatus, eventType models.EventType) ([]models.OutboxEntry, error) {
	query := "SELECT id, user_id, event_type, status, payload, created_at, updated_at FROM wallet_outbox WHERE status = $1"
	args := []any{status}
	if eventType != "" {
		query += " AND event_type = $2"
		args = append(args, eventType)
	}
	query += " ORDER BY created_at"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query outbox by status",
			slog.String("status", string(status)),
			slog.Any("err", err),
		)
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.OutboxEntry, 0)
	for rows.Next() {
		var entry models.OutboxEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.EventType, &entry.Status, &entry.Payload, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
			r.logger.Error("Failed to scan outbox row", slog.Any("err", err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *OutboxPGRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]models.OutboxEntry, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT id, user_id, event_type, status, payload, created_at, updated_at FROM wallet_outbox WHERE user_id = $1 ORDER BY created_at",
		userID,
	)
	if err != nil {
		r.logger.Error("Failed to query outbox by user",
			slog.String("user_id", userID.String()),
			slog.Any("err", err),
		)
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.OutboxEntry, 0)
	for rows.Next() {
		var entry models.OutboxEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.EventType, &entry.Status, &entry.Payload, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
			r.logger.Error("Failed to scan outbox row", slog.Any("err", err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
