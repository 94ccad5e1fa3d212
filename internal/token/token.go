package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid or expired token")

const (
	userTokenTTL     = 24 * time.Hour
	internalTokenTTL = 5 * time.Minute
)

// UserClaims is the end-user token payload. The subject claim carries
// the user id.
type UserClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// InternalClaims marks a short-lived service-to-service token.
type InternalClaims struct {
	Internal bool `json:"internal"`
	jwt.RegisteredClaims
}

// Manager signs and verifies both token kinds. Secrets are injected at
// construction, once, from config.
type Manager struct {
	userSecret     []byte
	internalSecret []byte
}

func NewManager(userSecret, internalSecret string) *Manager {
	return &Manager{
		userSecret:     []byte(userSecret),
		internalSecret: []byte(internalSecret),
	}
}

func (m *Manager) IssueUserToken(userID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := UserClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(userTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.userSecret)
}

// VerifyUserToken checks signature and expiry and returns the subject
// user id.
func (m *Manager) VerifyUserToken(raw string) (uuid.UUID, error) {
	claims := &UserClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return m.userSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return uuid.Nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userID, nil
}

// IssueInternalToken mints a fresh 5 minute service token; one is
// generated per outbound call.
func (m *Manager) IssueInternalToken() (string, error) {
	now := time.Now()
	claims := InternalClaims{
		Internal: true,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(internalTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.internalSecret)
}

// VerifyInternalToken validates signature and expiry only; there is no
// per-call payload signing.
func (m *Manager) VerifyInternalToken(raw string) error {
	claims := &InternalClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return m.internalSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return ErrInvalidToken
	}
	return nil
}
