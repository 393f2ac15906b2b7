package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_IssueAndVerify(t *testing.T) {
	svc := NewSessionService("test-secret", 365)

	userID := svc.NewUserID()
	token, err := svc.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestSessionService_IssueRequiresUserID(t *testing.T) {
	svc := NewSessionService("test-secret", 365)

	_, err := svc.Issue("")
	assert.Error(t, err)
}

func TestSessionService_RejectsWrongSecret(t *testing.T) {
	issuer := NewSessionService("secret-a", 365)
	verifier := NewSessionService("secret-b", 365)

	token, err := issuer.Issue(issuer.NewUserID())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestSessionService_RejectsExpiredToken(t *testing.T) {
	svc := NewSessionService("test-secret", -1)

	token, err := svc.Issue(svc.NewUserID())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestSessionService_RejectsGarbage(t *testing.T) {
	svc := NewSessionService("test-secret", 365)

	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)
}
