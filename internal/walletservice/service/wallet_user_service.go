package service

import (
	"context"
	"errors"
	"log/slog"

	"walletsync/internal/walletservice/models"
	"walletsync/internal/walletservice/repository"

	"github.com/google/uuid"
)

type WalletUserService struct {
	repo   WalletUserRepository
	logger *slog.Logger
}

func NewWalletUserService(repo WalletUserRepository, logger *slog.Logger) *WalletUserService {
	return &WalletUserService{
		repo:   repo,
		logger: logger,
	}
}

// EnsureExists is an idempotent upsert-by-lookup. Two concurrent calls
// for the same external id both succeed: the loser of the insert race
// hits the uniqueness constraint and re-reads the winner's row.
func (s *WalletUserService) EnsureExists(ctx context.Context, externalUserID uuid.UUID) (models.WalletUser, bool, error) {
	existing, err := s.repo.FindByExternalID(ctx, externalUserID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrWalletUserNotFound) {
		return models.WalletUser{}, false, err
	}

	created, err := s.repo.Create(ctx, externalUserID)
	if err == nil {
		return created, true, nil
	}
	if errors.Is(err, repository.ErrWalletUserExists) {
		winner, findErr := s.repo.FindByExternalID(ctx, externalUserID)
		if findErr != nil {
			s.logger.Error("Failed to re-read wallet user after insert race",
				slog.String("external_user_id", externalUserID.String()),
				slog.Any("err", findErr),
			)
			return models.WalletUser{}, false, findErr
		}
		return winner, false, nil
	}
	s.logger.Error("Failed to create wallet user",
		slog.String("external_user_id", externalUserID.String()),
		slog.Any("err", err),
	)
	return models.WalletUser{}, false, err
}
