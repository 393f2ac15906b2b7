package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mizan-app/mizan/internal/shared/logger"
	"github.com/mizan-app/mizan/internal/shared/utils"
)

// SessionHandler exposes the anonymous session. The middleware already
// issues tokens transparently; the explicit endpoint lets clients force
// a cookie before the first plan request.
type SessionHandler struct {
	logger logger.Interface
}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{
		logger: logger.NewLogger(),
	}
}

type sessionResponse struct {
	UserID string `json:"user_id"`
}

// CreateSession returns the current session's user ID. The middleware
// set the cookie on the way in when the request had none.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	utils.OKResponse(c, sessionResponse{UserID: userID})
}
