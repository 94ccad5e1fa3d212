package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"walletsync/internal/walletservice/models"
	"walletsync/internal/walletservice/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TransactionService interface {
	CreateTransaction(ctx context.Context, userID uuid.UUID, txType models.TransactionType, amount int64) (models.Transaction, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, typeFilter models.TransactionType) ([]models.Transaction, error)
	CalculateBalance(ctx context.Context, userID uuid.UUID) (int64, error)
}

type WalletUserService interface {
	EnsureExists(ctx context.Context, externalUserID uuid.UUID) (models.WalletUser, bool, error)
}

type WalletHTTPHandler struct {
	transactions TransactionService
	users        WalletUserService
}

func NewWalletHTTPHandler(transactions TransactionService, users WalletUserService) *WalletHTTPHandler {
	return &WalletHTTPHandler{
		transactions: transactions,
		users:        users,
	}
}

func (h *WalletHTTPHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	r.GET("/health", h.HandleHealth)

	internal := r.Group("/", auth)
	{
		internal.POST("/wallet/users", h.HandleCreateWalletUser)
		internal.POST("/transactions", h.HandleCreateTransaction)
		internal.GET("/transactions", h.HandleListTransactions)
		internal.GET("/balance", h.HandleGetBalance)
	}
}

func (h *WalletHTTPHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK", "timestamp": time.Now().UTC().Format(time.RFC3339)})
}

func (h *WalletHTTPHandler) HandleCreateWalletUser(c *gin.Context) {
	var req models.CreateWalletUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	user, isNew, err := h.users.EnsureExists(c.Request.Context(), req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create wallet user"})
		return
	}

	status := http.StatusOK
	if isNew {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"id":               user.ID,
		"external_user_id": user.ExternalUserID,
		"created_at":       user.CreatedAt,
	})
}

func (h *WalletHTTPHandler) HandleCreateTransaction(c *gin.Context) {
	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	tx, err := h.transactions.CreateTransaction(c.Request.Context(), req.UserID, models.TransactionType(req.Type), req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotValid):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrAmountExceedsMax):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		}
		return
	}
	c.JSON(http.StatusCreated, tx)
}

func (h *WalletHTTPHandler) HandleListTransactions(c *gin.Context) {
	var query models.ListTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}
	userID, err := uuid.Parse(query.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return
	}

	transactions, err := h.transactions.ListTransactions(c.Request.Context(), userID, models.TransactionType(query.Type))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

func (h *WalletHTTPHandler) HandleGetBalance(c *gin.Context) {
	userIDStr := c.Query("user_id")
	if userIDStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user_id in query parameters"})
		return
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return
	}

	amount, err := h.transactions.CalculateBalance(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate balance"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"amount": amount})
}
