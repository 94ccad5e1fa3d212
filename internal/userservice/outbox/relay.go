// Package outbox contains the optional relay that drains PENDING
// entries left behind by failed wallet-service calls. The request path
// never re-processes an entry itself; without the relay, PENDING rows
// wait for manual reconciliation.
package outbox

import (
	"context"
	"log/slog"
	"time"

	"walletsync/internal/userservice/models"
	"walletsync/internal/userservice/service"

	"github.com/google/uuid"
)

// Relay polls PENDING outbox entries and retries the wallet call they
// record, advancing each entry to COMPLETED on success or FAILED once
// the attempt cap is reached. Only entries older than the grace period
// are picked up; a younger intent may belong to a request that is still
// executing, and replaying it would double the wallet call. Attempt
// counts are tracked in memory; a restart resets them, which only
// delays the FAILED transition.
type Relay struct {
	outbox      service.OutboxRepository
	finder      PendingFinder
	wallet      service.WalletGateway
	logger      *slog.Logger
	interval    time.Duration
	grace       time.Duration
	maxAttempts int

	attempts map[uuid.UUID]int
}

// PendingFinder is the query side the relay needs beyond the
// orchestrator's repository surface.
type PendingFinder interface {
	FindPendingBefore(ctx context.Context, cutoff time.Time) ([]models.OutboxEntry, error)
}

func NewRelay(outbox service.OutboxRepository, finder PendingFinder, wallet service.WalletGateway, logger *slog.Logger, interval, grace time.Duration, maxAttempts int) *Relay {
	return &Relay{
		outbox:      outbox,
		finder:      finder,
		wallet:      wallet,
		logger:      logger,
		interval:    interval,
		grace:       grace,
		maxAttempts: maxAttempts,
		attempts:    make(map[uuid.UUID]int),
	}
}

// Run blocks until the context is cancelled, sweeping on the
// configured interval.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("Outbox relay started", slog.Duration("interval", r.interval))
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Outbox relay stopped")
			return
		case <-ticker.C:
			r.Sweep(ctx)
		}
	}
}

// Sweep retries every PENDING entry older than the grace period once.
func (r *Relay) Sweep(ctx context.Context) {
	entries, err := r.finder.FindPendingBefore(ctx, time.Now().Add(-r.grace))
	if err != nil {
		r.logger.Error("Outbox sweep failed to list pending entries", slog.Any("err", err))
		return
	}

	for _, entry := range entries {
		r.process(ctx, entry)
	}
}

func (r *Relay) process(ctx context.Context, entry models.OutboxEntry) {
	err := r.dispatch(ctx, entry)
	if err == nil {
		if updErr := r.outbox.UpdateStatus(ctx, entry.ID, models.OutboxStatusCompleted); updErr != nil {
			r.logger.Error("Failed to complete replayed outbox entry",
				slog.String("outbox_id", entry.ID.String()),
				slog.Any("err", updErr),
			)
			return
		}
		delete(r.attempts, entry.ID)
		r.logger.Info("Outbox entry replayed",
			slog.String("outbox_id", entry.ID.String()),
			slog.String("event_type", string(entry.EventType)),
		)
		return
	}

	r.attempts[entry.ID]++
	r.logger.Warn("Outbox replay attempt failed",
		slog.String("outbox_id", entry.ID.String()),
		slog.String("user_id", entry.UserID.String()),
		slog.String("event_type", string(entry.EventType)),
		slog.Int("attempt", r.attempts[entry.ID]),
		slog.Any("err", err),
	)
	if r.attempts[entry.ID] >= r.maxAttempts {
		if updErr := r.outbox.UpdateStatus(ctx, entry.ID, models.OutboxStatusFailed); updErr != nil {
			r.logger.Error("Failed to mark outbox entry failed",
				slog.String("outbox_id", entry.ID.String()),
				slog.Any("err", updErr),
			)
			return
		}
		delete(r.attempts, entry.ID)
		r.logger.Error("Outbox entry gave up after max attempts",
			slog.String("outbox_id", entry.ID.String()),
			slog.String("user_id", entry.UserID.String()),
			slog.Int("max_attempts", r.maxAttempts),
		)
	}
}

func (r *Relay) dispatch(ctx context.Context, entry models.OutboxEntry) error {
	switch entry.EventType {
	case models.EventTypeUserCreated:
		return r.wallet.CreateWalletUser(ctx, entry.UserID, "")
	case models.EventTypeTransactionCreated:
		req, err := transactionRequestFromPayload(entry)
		if err != nil {
			return err
		}
		_, err = r.wallet.CreateTransaction(ctx, req, "")
		return err
	default:
		r.logger.Warn("Unknown outbox event type",
			slog.String("outbox_id", entry.ID.String()),
			slog.String("event_type", string(entry.EventType)),
		)
		return nil
	}
}

func transactionRequestFromPayload(entry models.OutboxEntry) (models.WalletTransactionRequest, error) {
	userID, err := uuid.Parse(stringField(entry.Payload, "user_id"))
	if err != nil {
		return models.WalletTransactionRequest{}, err
	}
	return models.WalletTransactionRequest{
		UserID: userID,
		Type:   stringField(entry.Payload, "type"),
		Amount: int64Field(entry.Payload, "amount"),
	}, nil
}

func stringField(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return s
}

// jsonb numbers come back as float64; amounts fit the 53-bit mantissa
// because admission caps them at the safe-integer ceiling.
func int64Field(payload map[string]any, key string) int64 {
	switch v := payload[key].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return 0
	}
}
