package repository_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"walletsync/internal/testutil"
	"walletsync/internal/walletservice/models"
	"walletsync/internal/walletservice/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestWalletUserRepository_CreateAndFind(t *testing.T) {
	pool, teardown := testutil.SetupWalletDB(t)
	defer teardown()
	repo := repository.NewWalletUserPGRepository(pool, testLogger)
	externalID := uuid.New()

	_, err := repo.FindByExternalID(context.Background(), externalID)
	assert.ErrorIs(t, err, repository.ErrWalletUserNotFound)

	created, err := repo.Create(context.Background(), externalID)
	assert.NoError(t, err)
	assert.Equal(t, externalID, created.ExternalUserID)
	assert.NotEqual(t, uuid.Nil, created.ID)

	found, err := repo.FindByExternalID(context.Background(), externalID)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestWalletUserRepository_DuplicateExternalID(t *testing.T) {
	pool, teardown := testutil.SetupWalletDB(t)
	defer teardown()
	repo := repository.NewWalletUserPGRepository(pool, testLogger)
	externalID := uuid.New()

	_, err := repo.Create(context.Background(), externalID)
	assert.NoError(t, err)

	_, err = repo.Create(context.Background(), externalID)
	assert.ErrorIs(t, err, repository.ErrWalletUserExists)
}

func TestTransactionRepository_AppendAndList(t *testing.T) {
	pool, teardown := testutil.SetupWalletDB(t)
	defer teardown()
	repo := repository.NewTransactionPGRepository(pool, testLogger)
	userID := uuid.New()

	credit, err := repo.Append(context.Background(), userID, models.TransactionTypeCredit, 1000)
	assert.NoError(t, err)
	assert.Equal(t, int64(1000), credit.Amount)
	assert.Equal(t, models.TransactionTypeCredit, credit.Type)

	_, err = repo.Append(context.Background(), userID, models.TransactionTypeDebit, 200)
	assert.NoError(t, err)

	all, err := repo.ListByUser(context.Background(), userID, "")
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	credits, err := repo.ListByUser(context.Background(), userID, models.TransactionTypeCredit)
	assert.NoError(t, err)
	assert.Len(t, credits, 1)
	assert.Equal(t, models.TransactionTypeCredit, credits[0].Type)
}

func TestTransactionRepository_ListEmpty(t *testing.T) {
	pool, teardown := testutil.SetupWalletDB(t)
	defer teardown()
	repo := repository.NewTransactionPGRepository(pool, testLogger)

	list, err := repo.ListByUser(context.Background(), uuid.New(), "")
	assert.NoError(t, err)
	assert.NotNil(t, list)
	assert.Len(t, list, 0)
}

func TestTransactionRepository_SumByType(t *testing.T) {
	pool, teardown := testutil.SetupWalletDB(t)
	defer teardown()
	repo := repository.NewTransactionPGRepository(pool, testLogger)
	userID := uuid.New()

	_, err := repo.Append(context.Background(), userID, models.TransactionTypeCredit, 1000)
	assert.NoError(t, err)
	_, err = repo.Append(context.Background(), userID, models.TransactionTypeCredit, 500)
	assert.NoError(t, err)
	_, err = repo.Append(context.Background(), userID, models.TransactionTypeDebit, 200)
	assert.NoError(t, err)

	sums, err := repo.SumByType(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1500), sums[models.TransactionTypeCredit])
	assert.Equal(t, int64(200), sums[models.TransactionTypeDebit])
}

func TestTransactionRepository_SumByType_NoEntries(t *testing.T) {
	pool, teardown := testutil.SetupWalletDB(t)
	defer teardown()
	repo := repository.NewTransactionPGRepository(pool, testLogger)

	sums, err := repo.SumByType(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Empty(t, sums)
}
