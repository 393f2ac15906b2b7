package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mizan-app/mizan/internal/application/finance/dto"
	"github.com/mizan-app/mizan/internal/application/finance/usecases"
	apperrors "github.com/mizan-app/mizan/internal/shared/errors"
	"github.com/mizan-app/mizan/internal/shared/id"
	"github.com/mizan-app/mizan/internal/shared/logger"
	"github.com/mizan-app/mizan/internal/shared/utils"
)

// CostHandler serves the fixed and variable running costs of a plan.
type CostHandler struct {
	fixedUC    *usecases.FixedCostUseCases
	variableUC *usecases.VariableCostUseCases
	logger     logger.Interface
}

func NewCostHandler(fixedUC *usecases.FixedCostUseCases, variableUC *usecases.VariableCostUseCases) *CostHandler {
	return &CostHandler{
		fixedUC:    fixedUC,
		variableUC: variableUC,
		logger:     logger.NewLogger(),
	}
}

func (h *CostHandler) ListFixedCosts(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}

	result, err := h.fixedUC.List(c.Request.Context(), userID, planSID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *CostHandler) AddFixedCost(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}

	var req dto.CreateFixedCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add fixed cost", "plan_sid", planSID, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.fixedUC.Add(c.Request.Context(), userID, planSID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Fixed cost added successfully")
}

func (h *CostHandler) UpdateFixedCost(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}
	costSID, err := utils.ParseSIDParam(c, "cid", id.PrefixFixedCost, "fixed cost")
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.UpdateFixedCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update fixed cost", "cost_sid", costSID, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.fixedUC.Update(c.Request.Context(), userID, planSID, costSID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Fixed cost updated successfully", result)
}

func (h *CostHandler) DeleteFixedCost(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}
	costSID, err := utils.ParseSIDParam(c, "cid", id.PrefixFixedCost, "fixed cost")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.fixedUC.Delete(c.Request.Context(), userID, planSID, costSID); err != nil {
		respondError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *CostHandler) ListVariableCosts(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}

	result, err := h.variableUC.List(c.Request.Context(), userID, planSID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *CostHandler) AddVariableCost(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}

	var req dto.CreateVariableCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add variable cost", "plan_sid", planSID, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.variableUC.Add(c.Request.Context(), userID, planSID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Variable cost added successfully")
}

func (h *CostHandler) UpdateVariableCost(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}
	costSID, err := utils.ParseSIDParam(c, "cid", id.PrefixVariableCost, "variable cost")
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.UpdateVariableCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update variable cost", "cost_sid", costSID, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.variableUC.Update(c.Request.Context(), userID, planSID, costSID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Variable cost updated successfully", result)
}

func (h *CostHandler) DeleteVariableCost(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}
	costSID, err := utils.ParseSIDParam(c, "cid", id.PrefixVariableCost, "variable cost")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.variableUC.Delete(c.Request.Context(), userID, planSID, costSID); err != nil {
		respondError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
