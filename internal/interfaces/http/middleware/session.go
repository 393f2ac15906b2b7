package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mizan-app/mizan/internal/infrastructure/auth"
	sharedConfig "github.com/mizan-app/mizan/internal/shared/config"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

const userIDKey = "user_id"

// SessionMiddleware resolves the anonymous session for every request.
// A valid token in the session cookie (or Authorization header) maps
// to an existing user ID; anything else gets a fresh ID and a new
// cookie. Requests never fail for lack of a session.
type SessionMiddleware struct {
	sessions *auth.SessionService
	cfg      sharedConfig.SessionConfig
	logger   logger.Interface
}

func NewSessionMiddleware(sessions *auth.SessionService, cfg sharedConfig.SessionConfig, log logger.Interface) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
		cfg:      cfg,
		logger:   log,
	}
}

// Handle attaches the session's user ID to the request context,
// issuing a new session when needed.
func (m *SessionMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := m.extractToken(c); token != "" {
			claims, err := m.sessions.Verify(token)
			if err == nil {
				c.Set(userIDKey, claims.UserID)
				c.Next()
				return
			}
			m.logger.Debugw("invalid session token, issuing a new session", "error", err)
		}

		userID := m.sessions.NewUserID()
		token, err := m.sessions.Issue(userID)
		if err != nil {
			m.logger.Errorw("failed to issue session token", "error", err)
			c.Next()
			return
		}

		m.setCookie(c, token)
		c.Set(userIDKey, userID)
		c.Next()
	}
}

func (m *SessionMiddleware) extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(m.cfg.CookieName); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func (m *SessionMiddleware) setCookie(c *gin.Context, token string) {
	maxAge := int(m.sessions.TTL().Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cfg.CookieName, token, maxAge, "/", m.cfg.CookieDomain, m.cfg.CookieSecure, true)
}

// GetUserID returns the session user ID set by the middleware.
func GetUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return "", false
	}
	userID, ok := value.(string)
	return userID, ok && userID != ""
}
