package token_test

import (
	"testing"

	"walletsync/internal/token"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserToken_RoundTrip(t *testing.T) {
	m := token.NewManager("user-secret", "internal-secret")
	userID := uuid.New()

	raw, err := m.IssueUserToken(userID, "alice@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, raw)

	got, err := m.VerifyUserToken(raw)
	assert.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestUserToken_WrongSecret(t *testing.T) {
	issuer := token.NewManager("user-secret", "internal-secret")
	verifier := token.NewManager("other-secret", "internal-secret")

	raw, err := issuer.IssueUserToken(uuid.New(), "alice@example.com")
	assert.NoError(t, err)

	_, err = verifier.VerifyUserToken(raw)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestUserToken_Garbage(t *testing.T) {
	m := token.NewManager("user-secret", "internal-secret")

	_, err := m.VerifyUserToken("not-a-jwt")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestInternalToken_RoundTrip(t *testing.T) {
	m := token.NewManager("user-secret", "internal-secret")

	raw, err := m.IssueInternalToken()
	assert.NoError(t, err)
	assert.NoError(t, m.VerifyInternalToken(raw))
}

// The two token kinds are signed with different secrets; one must never
// pass verification as the other.
func TestTokenKinds_NotInterchangeable(t *testing.T) {
	m := token.NewManager("user-secret", "internal-secret")

	userToken, err := m.IssueUserToken(uuid.New(), "alice@example.com")
	assert.NoError(t, err)
	assert.ErrorIs(t, m.VerifyInternalToken(userToken), token.ErrInvalidToken)

	internalToken, err := m.IssueInternalToken()
	assert.NoError(t, err)
	_, err = m.VerifyUserToken(internalToken)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}
