package test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"walletsync/internal/walletservice/models"
	"walletsync/internal/walletservice/repository"
	"walletsync/internal/walletservice/service"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTransactionService(t *testing.T) (*service.TransactionService, *MockTransactionRepository, *MockWalletUserRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockRepo := NewMockTransactionRepository(ctrl)
	mockUsers := NewMockWalletUserRepository(ctrl)
	return service.NewTransactionService(mockRepo, mockUsers, testLogger), mockRepo, mockUsers
}

func TestCreateTransaction_Success(t *testing.T) {
	svc, mockRepo, mockUsers := newTransactionService(t)
	userID := uuid.New()

	mockUsers.EXPECT().
		FindByExternalID(gomock.Any(), userID).
		Return(models.WalletUser{ID: uuid.New(), ExternalUserID: userID}, nil)
	mockRepo.EXPECT().
		Append(gomock.Any(), userID, models.TransactionTypeCredit, int64(1000)).
		Return(models.Transaction{ID: uuid.New(), UserID: userID, Type: models.TransactionTypeCredit, Amount: 1000}, nil)

	tx, err := svc.CreateTransaction(context.Background(), userID, models.TransactionTypeCredit, 1000)
	assert.NoError(t, err)
	assert.Equal(t, userID, tx.UserID)
	assert.Equal(t, int64(1000), tx.Amount)
}

func TestCreateTransaction_UnknownUser(t *testing.T) {
	svc, _, mockUsers := newTransactionService(t)
	userID := uuid.New()

	mockUsers.EXPECT().
		FindByExternalID(gomock.Any(), userID).
		Return(models.WalletUser{}, repository.ErrWalletUserNotFound)

	_, err := svc.CreateTransaction(context.Background(), userID, models.TransactionTypeCredit, 1000)
	assert.ErrorIs(t, err, service.ErrUserNotValid)
}

// An unknown user must win over an invalid amount: the registry check
// runs first, so a request that is wrong on both counts still reports
// the user error.
func TestCreateTransaction_UnknownUserWinsOverInvalidAmount(t *testing.T) {
	svc, _, mockUsers := newTransactionService(t)
	userID := uuid.New()

	mockUsers.EXPECT().
		FindByExternalID(gomock.Any(), userID).
		Return(models.WalletUser{}, repository.ErrWalletUserNotFound)

	_, err := svc.CreateTransaction(context.Background(), userID, models.TransactionTypeCredit, service.MaxTransactionAmount+1)
	assert.ErrorIs(t, err, service.ErrUserNotValid)
}

func TestCreateTransaction_AmountExceedsMaximum(t *testing.T) {
	svc, _, mockUsers := newTransactionService(t)
	userID := uuid.New()

	mockUsers.EXPECT().
		FindByExternalID(gomock.Any(), userID).
		Return(models.WalletUser{ID: uuid.New(), ExternalUserID: userID}, nil)

	_, err := svc.CreateTransaction(context.Background(), userID, models.TransactionTypeDebit, service.MaxTransactionAmount+1)
	assert.ErrorIs(t, err, service.ErrAmountExceedsMax)
	assert.Contains(t, err.Error(), "9007199254740991 cents")
	assert.Contains(t, err.Error(), "90071992547409.91 dollars")
}

func TestCreateTransaction_AtCeiling(t *testing.T) {
	svc, mockRepo, mockUsers := newTransactionService(t)
	userID := uuid.New()

	mockUsers.EXPECT().
		FindByExternalID(gomock.Any(), userID).
		Return(models.WalletUser{ID: uuid.New(), ExternalUserID: userID}, nil)
	mockRepo.EXPECT().
		Append(gomock.Any(), userID, models.TransactionTypeCredit, service.MaxTransactionAmount).
		Return(models.Transaction{Amount: service.MaxTransactionAmount}, nil)

	_, err := svc.CreateTransaction(context.Background(), userID, models.TransactionTypeCredit, service.MaxTransactionAmount)
	assert.NoError(t, err)
}

func TestCalculateBalance_CreditsMinusDebits(t *testing.T) {
	svc, mockRepo, _ := newTransactionService(t)
	userID := uuid.New()

	mockRepo.EXPECT().
		SumByType(gomock.Any(), userID).
		Return(map[models.TransactionType]int64{
			models.TransactionTypeCredit: 1500,
			models.TransactionTypeDebit:  200,
		}, nil)

	balance, err := svc.CalculateBalance(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1300), balance)
}

func TestCalculateBalance_NoEntries(t *testing.T) {
	svc, mockRepo, _ := newTransactionService(t)
	userID := uuid.New()

	mockRepo.EXPECT().
		SumByType(gomock.Any(), userID).
		Return(map[models.TransactionType]int64{}, nil)

	balance, err := svc.CalculateBalance(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestCalculateBalance_Negative(t *testing.T) {
	svc, mockRepo, _ := newTransactionService(t)
	userID := uuid.New()

	mockRepo.EXPECT().
		SumByType(gomock.Any(), userID).
		Return(map[models.TransactionType]int64{
			models.TransactionTypeDebit: 500,
		}, nil)

	balance, err := svc.CalculateBalance(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(-500), balance)
}
