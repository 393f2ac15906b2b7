package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mizan-app/mizan/internal/application/finance/dto"
	"github.com/mizan-app/mizan/internal/application/finance/usecases"
	apperrors "github.com/mizan-app/mizan/internal/shared/errors"
	"github.com/mizan-app/mizan/internal/shared/logger"
	"github.com/mizan-app/mizan/internal/shared/utils"
)

type ProjectionHandler struct {
	getProjectionUC    *usecases.GetProjectionUseCase
	updateProjectionUC *usecases.UpdateProjectionUseCase
	getDashboardUC     *usecases.GetDashboardUseCase
	logger             logger.Interface
}

func NewProjectionHandler(
	getProjectionUC *usecases.GetProjectionUseCase,
	updateProjectionUC *usecases.UpdateProjectionUseCase,
	getDashboardUC *usecases.GetDashboardUseCase,
) *ProjectionHandler {
	return &ProjectionHandler{
		getProjectionUC:    getProjectionUC,
		updateProjectionUC: updateProjectionUC,
		getDashboardUC:     getDashboardUC,
		logger:             logger.NewLogger(),
	}
}

// GetProjection returns the sales hypothesis with all derived metrics.
func (h *ProjectionHandler) GetProjection(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}

	result, err := h.getProjectionUC.Execute(c.Request.Context(), userID, planSID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// UpdateProjection applies hypothesis changes and responds with the
// recomputed metrics.
func (h *ProjectionHandler) UpdateProjection(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update projection", "plan_sid", planSID, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.updateProjectionUC.Execute(c.Request.Context(), userID, planSID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Projection updated successfully", result)
}

// GetDashboard returns the plan's viability summary.
func (h *ProjectionHandler) GetDashboard(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}

	result, err := h.getDashboardUC.Execute(c.Request.Context(), userID, planSID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
