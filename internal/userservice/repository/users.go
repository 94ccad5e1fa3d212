package repository

import (
	"context"
	"errors"
	"log/slog"

	"walletsync/internal/userservice/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

type UserPGRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewUserPGRepository(pool *pgxpool.Pool, logger *slog.Logger) *UserPGRepository {
	return &UserPGRepository{
		pool:   pool,
		logger: logger,
	}
}

// Create inserts a user row; the password is already hashed by the
// caller. The UNIQUE constraint on email maps to ErrEmailTaken.
func (r *UserPGRepository) Create(ctx context.Context, email, passwordHash, firstName, lastName string) (models.User, error) {
	var user models.User
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, password, first_name, last_name, created_at, updated_at`,
		email, passwordHash, firstName, lastName,
	).Scan(&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.User{}, ErrEmailTaken
		}
		r.logger.Error("Failed to create user",
			slog.String("email", email),
			slog.Any("err", err),
		)
		return models.User{}, err
	}
	return user, nil
}

func (r *UserPGRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx,
		"SELECT id, email, password, first_name, last_name, created_at, updated_at FROM users WHERE email = $1",
		email)
}

func (r *UserPGRepository) FindByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return r.findOne(ctx,
		"SELECT id, email, password, first_name, last_name, created_at, updated_at FROM users WHERE id = $1",
		id)
}

func (r *UserPGRepository) findOne(ctx context.Context, query string, arg any) (models.User, error) {
	var user models.User
	err := r.pool.QueryRow(ctx, query, arg).
		Scan(&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName, &user.CreatedAt, &user.UpdatedAt)
	if err == pgx.ErrNoRows {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("Failed to query user", slog.Any("err", err))
		return models.User{}, err
	}
	return user, nil
}
