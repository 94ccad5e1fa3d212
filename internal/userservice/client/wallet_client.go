package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"walletsync/internal/token"
	"walletsync/internal/userservice/models"

	"github.com/google/uuid"
)

// ErrWalletSync is the generic synchronization-failure signal. Callers
// never see transport detail; they catch this and degrade.
var ErrWalletSync = errors.New("wallet service synchronization failed")

const requestTimeout = 5 * time.Second

// WalletClient is the authenticated HTTP boundary to the wallet
// service. Every call mints a fresh short-lived internal token and
// forwards the inbound correlation id when one exists.
type WalletClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     *token.Manager
	logger     *slog.Logger
}

func NewWalletClient(baseURL string, tokens *token.Manager, logger *slog.Logger) *WalletClient {
	return &WalletClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		tokens:     tokens,
		logger:     logger,
	}
}

// GetBalance never fails: any transport, status or decode problem
// yields a nil amount so the caller can render "balance unknown".
func (c *WalletClient) GetBalance(ctx context.Context, userID uuid.UUID, correlationID string) models.BalanceResponse {
	resp, err := c.do(ctx, http.MethodGet, "/balance?user_id="+url.QueryEscape(userID.String()), nil, correlationID)
	if err != nil {
		c.logger.Warn("Failed to fetch balance from wallet service",
			slog.String("user_id", userID.String()),
			slog.Any("err", err),
		)
		return models.BalanceResponse{}
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Wallet service returned non-OK for balance",
			slog.String("user_id", userID.String()),
			slog.Int("status", resp.StatusCode),
		)
		return models.BalanceResponse{}
	}

	var balance models.BalanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&balance); err != nil {
		c.logger.Warn("Failed to decode balance response",
			slog.String("user_id", userID.String()),
			slog.Any("err", err),
		)
		return models.BalanceResponse{}
	}
	return balance
}

// CreateWalletUser provisions the wallet-side record for a new
// identity. Any failure collapses to ErrWalletSync.
func (c *WalletClient) CreateWalletUser(ctx context.Context, userID uuid.UUID, correlationID string) error {
	body, _ := json.Marshal(map[string]string{"user_id": userID.String()})
	resp, err := c.do(ctx, http.MethodPost, "/wallet/users", body, correlationID)
	if err != nil {
		c.logger.Warn("Failed to create wallet user",
			slog.String("user_id", userID.String()),
			slog.Any("err", err),
		)
		return ErrWalletSync
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		c.logger.Warn("Wallet service rejected wallet user creation",
			slog.String("user_id", userID.String()),
			slog.Int("status", resp.StatusCode),
		)
		return ErrWalletSync
	}
	return nil
}

// CreateTransaction records the real ledger entry remotely. Any
// failure collapses to ErrWalletSync; the caller leaves the outbox
// intent PENDING.
func (c *WalletClient) CreateTransaction(ctx context.Context, req models.WalletTransactionRequest, correlationID string) (*models.WalletTransaction, error) {
	body, _ := json.Marshal(req)
	resp, err := c.do(ctx, http.MethodPost, "/transactions", body, correlationID)
	if err != nil {
		c.logger.Warn("Failed to create transaction in wallet service",
			slog.String("user_id", req.UserID.String()),
			slog.Any("err", err),
		)
		return nil, ErrWalletSync
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusCreated {
		c.logger.Warn("Wallet service rejected transaction",
			slog.String("user_id", req.UserID.String()),
			slog.Int("status", resp.StatusCode),
		)
		return nil, ErrWalletSync
	}

	var tx models.WalletTransaction
	if err := json.NewDecoder(resp.Body).Decode(&tx); err != nil {
		c.logger.Warn("Failed to decode transaction response",
			slog.String("user_id", req.UserID.String()),
			slog.Any("err", err),
		)
		return nil, ErrWalletSync
	}
	return &tx, nil
}

// ListTransactions never fails: any problem yields an empty list.
func (c *WalletClient) ListTransactions(ctx context.Context, userID uuid.UUID, correlationID string) []models.WalletTransaction {
	resp, err := c.do(ctx, http.MethodGet, "/transactions?user_id="+url.QueryEscape(userID.String()), nil, correlationID)
	if err != nil {
		c.logger.Warn("Failed to list transactions from wallet service",
			slog.String("user_id", userID.String()),
			slog.Any("err", err),
		)
		return []models.WalletTransaction{}
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Wallet service returned non-OK for transactions",
			slog.String("user_id", userID.String()),
			slog.Int("status", resp.StatusCode),
		)
		return []models.WalletTransaction{}
	}

	var list models.TransactionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		c.logger.Warn("Failed to decode transactions response",
			slog.String("user_id", userID.String()),
			slog.Any("err", err),
		)
		return []models.WalletTransaction{}
	}
	if list.Transactions == nil {
		return []models.WalletTransaction{}
	}
	return list.Transactions
}

func (c *WalletClient) do(ctx context.Context, method, path string, body []byte, correlationID string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	internalToken, err := c.tokens.IssueInternalToken()
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+internalToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if correlationID != "" {
		req.Header.Set("X-Correlation-Id", correlationID)
	}

	return c.httpClient.Do(req)
}

func drain(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
