package test

import (
	"context"
	"errors"
	"testing"

	"walletsync/internal/userservice/client"
	"walletsync/internal/userservice/models"
	"walletsync/internal/userservice/repository"
	"walletsync/internal/userservice/service"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type userServiceMocks struct {
	repo   *MockUserRepository
	outbox *MockOutboxRepository
	wallet *MockWalletGateway
	tokens *MockTokenIssuer
}

func newUserService(t *testing.T) (*service.UserService, userServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	m := userServiceMocks{
		repo:   NewMockUserRepository(ctrl),
		outbox: NewMockOutboxRepository(ctrl),
		wallet: NewMockWalletGateway(ctrl),
		tokens: NewMockTokenIssuer(ctrl),
	}
	return service.NewUserService(m.repo, m.outbox, m.wallet, m.tokens, testLogger), m
}

var registerReq = models.RegisterRequest{
	Email:     "alice@example.com",
	Password:  "password123",
	FirstName: "Alice",
	LastName:  "Smith",
}

func TestRegister_WalletSyncSucceeds_OutboxCompleted(t *testing.T) {
	svc, m := newUserService(t)
	userID := uuid.New()
	user := models.User{ID: userID, Email: registerReq.Email, FirstName: "Alice", LastName: "Smith"}

	m.repo.EXPECT().FindByEmail(gomock.Any(), registerReq.Email).Return(models.User{}, repository.ErrUserNotFound)
	m.repo.EXPECT().Create(gomock.Any(), registerReq.Email, gomock.Any(), "Alice", "Smith").Return(user, nil)
	m.wallet.EXPECT().CreateWalletUser(gomock.Any(), userID, "").Return(nil)
	m.outbox.EXPECT().
		Create(gomock.Any(), userID, models.EventTypeUserCreated, gomock.Any(), models.OutboxStatusCompleted).
		Return(models.OutboxEntry{ID: uuid.New()}, nil)
	m.tokens.EXPECT().IssueUserToken(userID, registerReq.Email).Return("token123", nil)

	result, err := svc.Register(context.Background(), registerReq, "")
	assert.NoError(t, err)
	assert.Equal(t, userID, result.ID)
	assert.Equal(t, "token123", result.Token)
}

// Registration must survive a wallet outage: the caller still gets a
// usable token and the outbox entry is written PENDING.
func TestRegister_WalletSyncFails_OutboxPending(t *testing.T) {
	svc, m := newUserService(t)
	userID := uuid.New()
	user := models.User{ID: userID, Email: registerReq.Email, FirstName: "Alice", LastName: "Smith"}

	m.repo.EXPECT().FindByEmail(gomock.Any(), registerReq.Email).Return(models.User{}, repository.ErrUserNotFound)
	m.repo.EXPECT().Create(gomock.Any(), registerReq.Email, gomock.Any(), "Alice", "Smith").Return(user, nil)
	m.wallet.EXPECT().CreateWalletUser(gomock.Any(), userID, "").Return(client.ErrWalletSync)
	m.outbox.EXPECT().
		Create(gomock.Any(), userID, models.EventTypeUserCreated, gomock.Any(), models.OutboxStatusPending).
		Return(models.OutboxEntry{ID: uuid.New()}, nil)
	m.tokens.EXPECT().IssueUserToken(userID, registerReq.Email).Return("token123", nil)

	result, err := svc.Register(context.Background(), registerReq, "")
	assert.NoError(t, err)
	assert.Equal(t, "token123", result.Token)
}

func TestRegister_EmailTaken_NoUserNoOutbox(t *testing.T) {
	svc, m := newUserService(t)

	m.repo.EXPECT().FindByEmail(gomock.Any(), registerReq.Email).Return(models.User{ID: uuid.New()}, nil)

	_, err := svc.Register(context.Background(), registerReq, "")
	assert.ErrorIs(t, err, repository.ErrEmailTaken)
}

func TestRegister_OutboxPayloadCarriesUserAttributes(t *testing.T) {
	svc, m := newUserService(t)
	userID := uuid.New()
	user := models.User{ID: userID, Email: registerReq.Email, FirstName: "Alice", LastName: "Smith"}

	m.repo.EXPECT().FindByEmail(gomock.Any(), registerReq.Email).Return(models.User{}, repository.ErrUserNotFound)
	m.repo.EXPECT().Create(gomock.Any(), registerReq.Email, gomock.Any(), "Alice", "Smith").Return(user, nil)
	m.wallet.EXPECT().CreateWalletUser(gomock.Any(), userID, "").Return(nil)
	m.outbox.EXPECT().
		Create(gomock.Any(), userID, models.EventTypeUserCreated, gomock.Any(), models.OutboxStatusCompleted).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ models.EventType, payload map[string]any, _ models.OutboxStatus) (models.OutboxEntry, error) {
			assert.Equal(t, userID.String(), payload["user_id"])
			assert.Equal(t, registerReq.Email, payload["email"])
			assert.Equal(t, "Alice", payload["firstName"])
			assert.Equal(t, "Smith", payload["lastName"])
			return models.OutboxEntry{ID: uuid.New()}, nil
		})
	m.tokens.EXPECT().IssueUserToken(userID, registerReq.Email).Return("token123", nil)

	_, err := svc.Register(context.Background(), registerReq, "")
	assert.NoError(t, err)
}

func TestLogin_Success(t *testing.T) {
	svc, m := newUserService(t)
	userID := uuid.New()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	m.repo.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").
		Return(models.User{ID: userID, Email: "alice@example.com", Password: string(hash)}, nil)
	m.tokens.EXPECT().IssueUserToken(userID, "alice@example.com").Return("token123", nil)

	result, err := svc.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "password123"})
	assert.NoError(t, err)
	assert.Equal(t, "token123", result.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, m := newUserService(t)
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	m.repo.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").
		Return(models.User{ID: uuid.New(), Email: "alice@example.com", Password: string(hash)}, nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, m := newUserService(t)

	m.repo.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").
		Return(models.User{}, repository.ErrUserNotFound)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestCreateTransaction_IntentThenCompleted(t *testing.T) {
	svc, m := newUserService(t)
	userID := uuid.New()
	outboxID := uuid.New()
	req := models.CreateTransactionRequest{Type: "CREDIT", Amount: 1000}

	intent := m.outbox.EXPECT().
		CreateIntent(gomock.Any(), userID, models.EventTypeTransactionCreated, gomock.Any()).
		Return(outboxID, nil)
	call := m.wallet.EXPECT().
		CreateTransaction(gomock.Any(), models.WalletTransactionRequest{UserID: userID, Type: "CREDIT", Amount: 1000}, "corr-1").
		Return(&models.WalletTransaction{ID: uuid.New(), UserID: userID, Type: "CREDIT", Amount: 1000}, nil).
		After(intent)
	m.outbox.EXPECT().
		UpdateStatus(gomock.Any(), outboxID, models.OutboxStatusCompleted).
		Return(nil).
		After(call)

	tx, err := svc.CreateTransaction(context.Background(), userID, req, "corr-1")
	assert.NoError(t, err)
	assert.NotNil(t, tx)
	assert.Equal(t, int64(1000), tx.Amount)
}

// A failed wallet call leaves the intent row PENDING and the caller
// gets a nil transaction without an error. No status update happens.
func TestCreateTransaction_WalletFails_IntentStaysPending(t *testing.T) {
	svc, m := newUserService(t)
	userID := uuid.New()
	outboxID := uuid.New()
	req := models.CreateTransactionRequest{Type: "DEBIT", Amount: 200}

	m.outbox.EXPECT().
		CreateIntent(gomock.Any(), userID, models.EventTypeTransactionCreated, gomock.Any()).
		Return(outboxID, nil)
	m.wallet.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any(), "").
		Return(nil, client.ErrWalletSync)

	tx, err := svc.CreateTransaction(context.Background(), userID, req, "")
	assert.NoError(t, err)
	assert.Nil(t, tx)
}

func TestCreateTransaction_IntentWriteFails(t *testing.T) {
	svc, m := newUserService(t)
	userID := uuid.New()
	req := models.CreateTransactionRequest{Type: "CREDIT", Amount: 100}
	storeErr := errors.New("connection refused")

	m.outbox.EXPECT().
		CreateIntent(gomock.Any(), userID, models.EventTypeTransactionCreated, gomock.Any()).
		Return(uuid.Nil, storeErr)

	_, err := svc.CreateTransaction(context.Background(), userID, req, "")
	assert.ErrorIs(t, err, storeErr)
}

func TestGetUserWithBalance_BalanceUnknown(t *testing.T) {
	svc, m := newUserService(t)
	userID := uuid.New()

	m.repo.EXPECT().FindByID(gomock.Any(), userID).
		Return(models.User{ID: userID, Email: "alice@example.com"}, nil)
	m.wallet.EXPECT().GetBalance(gomock.Any(), userID, "").
		Return(models.BalanceResponse{})

	result, err := svc.GetUserWithBalance(context.Background(), userID, "")
	assert.NoError(t, err)
	assert.Nil(t, result.Balance)
}

func TestGetUserWithBalance_WithAmount(t *testing.T) {
	svc, m := newUserService(t)
	userID := uuid.New()
	amount := int64(1300)

	m.repo.EXPECT().FindByID(gomock.Any(), userID).
		Return(models.User{ID: userID, Email: "alice@example.com"}, nil)
	m.wallet.EXPECT().GetBalance(gomock.Any(), userID, "corr-7").
		Return(models.BalanceResponse{Amount: &amount})

	result, err := svc.GetUserWithBalance(context.Background(), userID, "corr-7")
	assert.NoError(t, err)
	assert.Equal(t, int64(1300), *result.Balance)
}
