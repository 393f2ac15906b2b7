package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mizan-app/mizan/internal/interfaces/http/middleware"
	"github.com/mizan-app/mizan/internal/shared/id"
	"github.com/mizan-app/mizan/internal/shared/utils"
)

// sessionUserID pulls the anonymous session's user ID from the request
// context. Writes a 401 when the session middleware did not run.
func sessionUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Missing session")
	}
	return userID, ok
}

// planSIDParam parses the business plan SID from the :id route param.
func planSIDParam(c *gin.Context) (string, bool) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixBusinessPlan, "business plan")
	if err != nil {
		respondError(c, err)
		return "", false
	}
	return sid, true
}
