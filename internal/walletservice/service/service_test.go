package service_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"walletsync/internal/testutil"
	"walletsync/internal/walletservice/models"
	"walletsync/internal/walletservice/repository"
	"walletsync/internal/walletservice/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestEnsureExists_Idempotent(t *testing.T) {
	pool, teardown := testutil.SetupWalletDB(t)
	defer teardown()
	repo := repository.NewWalletUserPGRepository(pool, testLogger)
	svc := service.NewWalletUserService(repo, testLogger)
	externalID := uuid.New()

	first, isNew, err := svc.EnsureExists(context.Background(), externalID)
	assert.NoError(t, err)
	assert.True(t, isNew)

	second, isNew, err := svc.EnsureExists(context.Background(), externalID)
	assert.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, first.ID, second.ID)
}

// Concurrent EnsureExists calls for the same external id must all
// settle on one row: the uniqueness constraint arbitrates the insert
// race and losers re-read the winner.
func TestEnsureExists_ConcurrentSameID(t *testing.T) {
	pool, teardown := testutil.SetupWalletDB(t)
	defer teardown()
	repo := repository.NewWalletUserPGRepository(pool, testLogger)
	svc := service.NewWalletUserService(repo, testLogger)
	externalID := uuid.New()

	var wg sync.WaitGroup
	ids := make([]uuid.UUID, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user, _, err := svc.EnsureExists(context.Background(), externalID)
			assert.NoError(t, err)
			ids[i] = user.ID
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}

	var count int
	err := pool.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM wallet_users WHERE external_user_id = $1", externalID).Scan(&count)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCreateTransactionAndBalance_Integration(t *testing.T) {
	pool, teardown := testutil.SetupWalletDB(t)
	defer teardown()
	userRepo := repository.NewWalletUserPGRepository(pool, testLogger)
	txRepo := repository.NewTransactionPGRepository(pool, testLogger)
	userSvc := service.NewWalletUserService(userRepo, testLogger)
	txSvc := service.NewTransactionService(txRepo, userRepo, testLogger)

	externalID := uuid.New()
	_, _, err := userSvc.EnsureExists(context.Background(), externalID)
	assert.NoError(t, err)

	for _, c := range []struct {
		txType models.TransactionType
		amount int64
	}{
		{models.TransactionTypeCredit, 1000},
		{models.TransactionTypeCredit, 500},
		{models.TransactionTypeDebit, 200},
	} {
		_, err := txSvc.CreateTransaction(context.Background(), externalID, c.txType, c.amount)
		assert.NoError(t, err)
	}

	balance, err := txSvc.CalculateBalance(context.Background(), externalID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1300), balance)
}

func TestCalculateBalance_Overdraft_Integration(t *testing.T) {
	pool, teardown := testutil.SetupWalletDB(t)
	defer teardown()
	userRepo := repository.NewWalletUserPGRepository(pool, testLogger)
	txRepo := repository.NewTransactionPGRepository(pool, testLogger)
	userSvc := service.NewWalletUserService(userRepo, testLogger)
	txSvc := service.NewTransactionService(txRepo, userRepo, testLogger)

	externalID := uuid.New()
	_, _, err := userSvc.EnsureExists(context.Background(), externalID)
	assert.NoError(t, err)

	// Overdraft is not prevented at this layer.
	_, err = txSvc.CreateTransaction(context.Background(), externalID, models.TransactionTypeDebit, 700)
	assert.NoError(t, err)

	balance, err := txSvc.CalculateBalance(context.Background(), externalID)
	assert.NoError(t, err)
	assert.Equal(t, int64(-700), balance)
}

func TestConcurrentAppends_BalanceExact(t *testing.T) {
	pool, teardown := testutil.SetupWalletDB(t)
	defer teardown()
	userRepo := repository.NewWalletUserPGRepository(pool, testLogger)
	txRepo := repository.NewTransactionPGRepository(pool, testLogger)
	userSvc := service.NewWalletUserService(userRepo, testLogger)
	txSvc := service.NewTransactionService(txRepo, userRepo, testLogger)

	externalID := uuid.New()
	_, _, err := userSvc.EnsureExists(context.Background(), externalID)
	assert.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 500; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			txType := models.TransactionTypeCredit
			if i%2 == 1 {
				txType = models.TransactionTypeDebit
			}
			_, err := txSvc.CreateTransaction(context.Background(), externalID, txType, 3)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// 250 credits and 250 debits of 3 cancel out exactly.
	balance, err := txSvc.CalculateBalance(context.Background(), externalID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}
