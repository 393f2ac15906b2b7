package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims identifies an anonymous browser session. No account
// exists behind the user ID; it only ties a browser to its plans.
type SessionClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// SessionService issues and verifies the signed session tokens carried
// in the session cookie.
type SessionService struct {
	secret  []byte
	expDays int
}

// NewSessionService creates a new SessionService
func NewSessionService(secret string, expDays int) *SessionService {
	return &SessionService{
		secret:  []byte(secret),
		expDays: expDays,
	}
}

// NewUserID generates a fresh anonymous user identifier
func (s *SessionService) NewUserID() string {
	return uuid.NewString()
}

// Issue signs a session token for the given anonymous user ID
func (s *SessionService) Issue(userID string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("user ID is required")
	}

	now := time.Now().UTC()
	claims := &SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expDays) * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// Verify parses a session token and returns its claims
func (s *SessionService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse session token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, fmt.Errorf("invalid session token")
	}

	return claims, nil
}

// TTL returns the configured session lifetime
func (s *SessionService) TTL() time.Duration {
	return time.Duration(s.expDays) * 24 * time.Hour
}
