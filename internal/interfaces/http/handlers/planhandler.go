package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mizan-app/mizan/internal/application/plan/dto"
	"github.com/mizan-app/mizan/internal/application/plan/usecases"
	apperrors "github.com/mizan-app/mizan/internal/shared/errors"
	"github.com/mizan-app/mizan/internal/shared/logger"
	"github.com/mizan-app/mizan/internal/shared/utils"
)

type PlanHandler struct {
	getOrCreatePlanUC *usecases.GetOrCreatePlanUseCase
	updatePlanUC      *usecases.UpdatePlanUseCase
	resolvePlanUC     *usecases.ResolvePlanUseCase
	logger            logger.Interface
}

func NewPlanHandler(
	getOrCreatePlanUC *usecases.GetOrCreatePlanUseCase,
	updatePlanUC *usecases.UpdatePlanUseCase,
	resolvePlanUC *usecases.ResolvePlanUseCase,
) *PlanHandler {
	return &PlanHandler{
		getOrCreatePlanUC: getOrCreatePlanUC,
		updatePlanUC:      updatePlanUC,
		resolvePlanUC:     resolvePlanUC,
		logger:            logger.NewLogger(),
	}
}

type getOrCreatePlanRequest struct {
	ID string `json:"id"`
}

// GetOrCreatePlan returns the session's working plan, creating a blank
// one on first use. An optional body {"id": "bp_..."} requests a
// specific plan; stale or foreign IDs fall back to the owner lookup.
func (h *PlanHandler) GetOrCreatePlan(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	var req getOrCreatePlanRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for get or create plan", "error", err)
			utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
			return
		}
	}

	result, err := h.getOrCreatePlanUC.Execute(c.Request.Context(), userID, req.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetPlan returns a plan owned by the session.
func (h *PlanHandler) GetPlan(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}

	p, err := h.resolvePlanUC.Execute(c.Request.Context(), userID, planSID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, dto.ToPlanResponse(p))
}

// UpdatePlan applies a partial update to the plan identity fields.
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan", "plan_sid", planSID, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), userID, planSID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", result)
}
