package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mizan-app/mizan/internal/application/swot/dto"
	"github.com/mizan-app/mizan/internal/application/swot/usecases"
	apperrors "github.com/mizan-app/mizan/internal/shared/errors"
	"github.com/mizan-app/mizan/internal/shared/logger"
	"github.com/mizan-app/mizan/internal/shared/utils"
)

type SwotHandler struct {
	getSwotUC    *usecases.GetSwotUseCase
	updateSwotUC *usecases.UpdateSwotUseCase
	logger       logger.Interface
}

func NewSwotHandler(getSwotUC *usecases.GetSwotUseCase, updateSwotUC *usecases.UpdateSwotUseCase) *SwotHandler {
	return &SwotHandler{
		getSwotUC:    getSwotUC,
		updateSwotUC: updateSwotUC,
		logger:       logger.NewLogger(),
	}
}

func (h *SwotHandler) GetSwot(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}

	result, err := h.getSwotUC.Execute(c.Request.Context(), userID, planSID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *SwotHandler) UpdateSwot(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateSwotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update swot", "plan_sid", planSID, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.updateSwotUC.Execute(c.Request.Context(), userID, planSID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "SWOT analysis updated successfully", result)
}
