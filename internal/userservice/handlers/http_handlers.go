package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"walletsync/internal/userservice/models"
	"walletsync/internal/userservice/repository"
	"walletsync/internal/userservice/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//go:generate mockgen -source=http_handlers.go -destination=../../../test/mock_user_service.go -package=test UserService

type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest, correlationID string) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	GetUserWithBalance(ctx context.Context, userID uuid.UUID, correlationID string) (models.UserWithBalance, error)
	CreateTransaction(ctx context.Context, userID uuid.UUID, req models.CreateTransactionRequest, correlationID string) (*models.WalletTransaction, error)
	GetTransactions(ctx context.Context, userID uuid.UUID, correlationID string) models.TransactionsResponse
	GetBalance(ctx context.Context, userID uuid.UUID, correlationID string) models.BalanceResponse
}

type UserHTTPHandler struct {
	service UserService
}

func NewUserHTTPHandler(service UserService) *UserHTTPHandler {
	return &UserHTTPHandler{service: service}
}

func (h *UserHTTPHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	r.GET("/health", h.HandleHealth)
	r.POST("/auth/register", h.HandleRegister)
	r.POST("/auth/login", h.HandleLogin)

	me := r.Group("/users/me", auth)
	{
		me.GET("", h.HandleGetMe)
		me.GET("/transactions", h.HandleGetTransactions)
		me.POST("/transactions", h.HandleCreateTransaction)
		me.GET("/balance", h.HandleGetBalance)
	}
}

func (h *UserHTTPHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK", "timestamp": time.Now().UTC().Format(time.RFC3339)})
}

func (h *UserHTTPHandler) HandleRegister(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	result, err := h.service.Register(c.Request.Context(), req, correlationID(c))
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *UserHTTPHandler) HandleLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *UserHTTPHandler) HandleGetMe(c *gin.Context) {
	userID := authedUserID(c)
	user, err := h.service.GetUserWithBalance(c.Request.Context(), userID, correlationID(c))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// HandleCreateTransaction reports 201 even when the wallet call
// failed: the intent is durably recorded and the body is null,
// "accepted, pending" rather than an error.
func (h *UserHTTPHandler) HandleCreateTransaction(c *gin.Context) {
	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	userID := authedUserID(c)
	tx, err := h.service.CreateTransaction(c.Request.Context(), userID, req, correlationID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		return
	}
	c.JSON(http.StatusCreated, tx)
}

func (h *UserHTTPHandler) HandleGetTransactions(c *gin.Context) {
	userID := authedUserID(c)
	c.JSON(http.StatusOK, h.service.GetTransactions(c.Request.Context(), userID, correlationID(c)))
}

func (h *UserHTTPHandler) HandleGetBalance(c *gin.Context) {
	userID := authedUserID(c)
	c.JSON(http.StatusOK, h.service.GetBalance(c.Request.Context(), userID, correlationID(c)))
}

func authedUserID(c *gin.Context) uuid.UUID {
	return c.MustGet(userIDKey).(uuid.UUID)
}

func correlationID(c *gin.Context) string {
	return c.GetHeader("X-Correlation-Id")
}
