package service

import (
	"context"
	"errors"
	"log/slog"

	"walletsync/internal/userservice/models"
	"walletsync/internal/userservice/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user_service.go -destination=../../../test/mock_user_dependencies.go -package=test UserRepository,OutboxRepository,WalletGateway,TokenIssuer

var ErrInvalidCredentials = errors.New("invalid email or password")

type UserRepository interface {
	Create(ctx context.Context, email, passwordHash, firstName, lastName string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (models.User, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, userID uuid.UUID, eventType models.EventType, payload map[string]any, status models.OutboxStatus) (models.OutboxEntry, error)
	CreateIntent(ctx context.Context, userID uuid.UUID, eventType models.EventType, payload map[string]any) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OutboxStatus) error
}

type WalletGateway interface {
	GetBalance(ctx context.Context, userID uuid.UUID, correlationID string) models.BalanceResponse
	CreateWalletUser(ctx context.Context, userID uuid.UUID, correlationID string) error
	CreateTransaction(ctx context.Context, req models.WalletTransactionRequest, correlationID string) (*models.WalletTransaction, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, correlationID string) []models.WalletTransaction
}

type TokenIssuer interface {
	IssueUserToken(userID uuid.UUID, email string) (string, error)
}

// UserService owns registration, login and the wallet synchronization
// around them. Both sync flows write an outbox record so a failed
// wallet call is never silently lost.
type UserService struct {
	repo   UserRepository
	outbox OutboxRepository
	wallet WalletGateway
	tokens TokenIssuer
	logger *slog.Logger
}

func NewUserService(repo UserRepository, outbox OutboxRepository, wallet WalletGateway, tokens TokenIssuer, logger *slog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		outbox: outbox,
		wallet: wallet,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates the local user, then attempts wallet provisioning
// and records the outcome in one outbox entry: COMPLETED when the call
// succeeded, PENDING when it failed. A sync failure never fails
// registration; the user exists locally and can log in, and the
// PENDING entry is the durable signal that reconciliation is owed.
func (s *UserService) Register(ctx context.Context, req models.RegisterRequest, correlationID string) (models.AuthResponse, error) {
	_, err := s.repo.FindByEmail(ctx, req.Email)
	if err == nil {
		return models.AuthResponse{}, repository.ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return models.AuthResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Failed to hash password", slog.Any("err", err))
		return models.AuthResponse{}, err
	}

	user, err := s.repo.Create(ctx, req.Email, string(hash), req.FirstName, req.LastName)
	if err != nil {
		return models.AuthResponse{}, err
	}

	status := models.OutboxStatusCompleted
	if err := s.wallet.CreateWalletUser(ctx, user.ID, correlationID); err != nil {
		status = models.OutboxStatusPending
		s.logger.Error("Failed to sync user to wallet service",
			slog.String("user_id", user.ID.String()),
			slog.String("event_type", string(models.EventTypeUserCreated)),
			slog.Any("err", err),
		)
	}

	if _, err := s.outbox.Create(ctx, user.ID, models.EventTypeUserCreated, map[string]any{
		"user_id":   user.ID.String(),
		"email":     user.Email,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
	}, status); err != nil {
		return models.AuthResponse{}, err
	}

	tok, err := s.tokens.IssueUserToken(user.ID, user.Email)
	if err != nil {
		s.logger.Error("Failed to issue token",
			slog.String("user_id", user.ID.String()),
			slog.Any("err", err),
		)
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Token:     tok,
	}, nil
}

func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return models.AuthResponse{}, ErrInvalidCredentials
		}
		return models.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	tok, err := s.tokens.IssueUserToken(user.ID, user.Email)
	if err != nil {
		s.logger.Error("Failed to issue token",
			slog.String("user_id", user.ID.String()),
			slog.Any("err", err),
		)
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Token:     tok,
	}, nil
}

func (s *UserService) GetUserWithBalance(ctx context.Context, userID uuid.UUID, correlationID string) (models.UserWithBalance, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return models.UserWithBalance{}, err
	}

	balance := s.wallet.GetBalance(ctx, userID, correlationID)

	return models.UserWithBalance{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Balance:   balance.Amount,
	}, nil
}

// CreateTransaction is the write-then-call outbox flow. The PENDING
// intent row is committed before the wallet call; on success it is
// advanced to COMPLETED, on failure it stays PENDING and the caller
// gets a nil transaction instead of an error. The local intent always
// survives; the remote effect is best effort with a durable trace left
// behind.
func (s *UserService) CreateTransaction(ctx context.Context, userID uuid.UUID, req models.CreateTransactionRequest, correlationID string) (*models.WalletTransaction, error) {
	outboxID, err := s.outbox.CreateIntent(ctx, userID, models.EventTypeTransactionCreated, map[string]any{
		"user_id": userID.String(),
		"amount":  req.Amount,
		"type":    req.Type,
	})
	if err != nil {
		return nil, err
	}

	tx, err := s.wallet.CreateTransaction(ctx, models.WalletTransactionRequest{
		UserID: userID,
		Type:   req.Type,
		Amount: req.Amount,
	}, correlationID)
	if err != nil {
		s.logger.Error("Failed to create transaction in wallet service, outbox entry left pending",
			slog.String("user_id", userID.String()),
			slog.String("outbox_id", outboxID.String()),
			slog.String("event_type", string(models.EventTypeTransactionCreated)),
			slog.Any("err", err),
		)
		return nil, nil
	}

	if err := s.outbox.UpdateStatus(ctx, outboxID, models.OutboxStatusCompleted); err != nil {
		s.logger.Error("Failed to complete outbox entry",
			slog.String("user_id", userID.String()),
			slog.String("outbox_id", outboxID.String()),
			slog.Any("err", err),
		)
	}
	return tx, nil
}

func (s *UserService) GetTransactions(ctx context.Context, userID uuid.UUID, correlationID string) models.TransactionsResponse {
	return models.TransactionsResponse{
		Transactions: s.wallet.ListTransactions(ctx, userID, correlationID),
	}
}

func (s *UserService) GetBalance(ctx context.Context, userID uuid.UUID, correlationID string) models.BalanceResponse {
	return s.wallet.GetBalance(ctx, userID, correlationID)
}
