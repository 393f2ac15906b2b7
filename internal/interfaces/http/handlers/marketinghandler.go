package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mizan-app/mizan/internal/application/marketing/dto"
	"github.com/mizan-app/mizan/internal/application/marketing/usecases"
	apperrors "github.com/mizan-app/mizan/internal/shared/errors"
	"github.com/mizan-app/mizan/internal/shared/logger"
	"github.com/mizan-app/mizan/internal/shared/utils"
)

type MarketingHandler struct {
	getMarketingUC    *usecases.GetMarketingUseCase
	updateMarketingUC *usecases.UpdateMarketingUseCase
	logger            logger.Interface
}

func NewMarketingHandler(
	getMarketingUC *usecases.GetMarketingUseCase,
	updateMarketingUC *usecases.UpdateMarketingUseCase,
) *MarketingHandler {
	return &MarketingHandler{
		getMarketingUC:    getMarketingUC,
		updateMarketingUC: updateMarketingUC,
		logger:            logger.NewLogger(),
	}
}

func (h *MarketingHandler) GetMarketing(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}

	result, err := h.getMarketingUC.Execute(c.Request.Context(), userID, planSID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *MarketingHandler) UpdateMarketing(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateMarketingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update marketing", "plan_sid", planSID, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.updateMarketingUC.Execute(c.Request.Context(), userID, planSID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Marketing strategy updated successfully", result)
}
