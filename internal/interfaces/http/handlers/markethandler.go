package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mizan-app/mizan/internal/application/market/dto"
	"github.com/mizan-app/mizan/internal/application/market/usecases"
	apperrors "github.com/mizan-app/mizan/internal/shared/errors"
	"github.com/mizan-app/mizan/internal/shared/id"
	"github.com/mizan-app/mizan/internal/shared/logger"
	"github.com/mizan-app/mizan/internal/shared/utils"
)

type MarketHandler struct {
	getMarketDataUC    *usecases.GetMarketDataUseCase
	updateMarketDataUC *usecases.UpdateMarketDataUseCase
	listCompetitorsUC  *usecases.ListCompetitorsUseCase
	addCompetitorUC    *usecases.AddCompetitorUseCase
	updateCompetitorUC *usecases.UpdateCompetitorUseCase
	deleteCompetitorUC *usecases.DeleteCompetitorUseCase
	logger             logger.Interface
}

func NewMarketHandler(
	getMarketDataUC *usecases.GetMarketDataUseCase,
	updateMarketDataUC *usecases.UpdateMarketDataUseCase,
	listCompetitorsUC *usecases.ListCompetitorsUseCase,
	addCompetitorUC *usecases.AddCompetitorUseCase,
	updateCompetitorUC *usecases.UpdateCompetitorUseCase,
	deleteCompetitorUC *usecases.DeleteCompetitorUseCase,
) *MarketHandler {
	return &MarketHandler{
		getMarketDataUC:    getMarketDataUC,
		updateMarketDataUC: updateMarketDataUC,
		listCompetitorsUC:  listCompetitorsUC,
		addCompetitorUC:    addCompetitorUC,
		updateCompetitorUC: updateCompetitorUC,
		deleteCompetitorUC: deleteCompetitorUC,
		logger:             logger.NewLogger(),
	}
}

func (h *MarketHandler) GetMarketData(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}

	result, err := h.getMarketDataUC.Execute(c.Request.Context(), userID, planSID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *MarketHandler) UpdateMarketData(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateMarketDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update market data", "plan_sid", planSID, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.updateMarketDataUC.Execute(c.Request.Context(), userID, planSID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Market data updated successfully", result)
}

func (h *MarketHandler) ListCompetitors(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}

	result, err := h.listCompetitorsUC.Execute(c.Request.Context(), userID, planSID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *MarketHandler) AddCompetitor(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}

	var req dto.CreateCompetitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add competitor", "plan_sid", planSID, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.addCompetitorUC.Execute(c.Request.Context(), userID, planSID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Competitor added successfully")
}

func (h *MarketHandler) UpdateCompetitor(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}
	competitorSID, err := utils.ParseSIDParam(c, "cid", id.PrefixCompetitor, "competitor")
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.UpdateCompetitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update competitor", "competitor_sid", competitorSID, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.updateCompetitorUC.Execute(c.Request.Context(), userID, planSID, competitorSID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Competitor updated successfully", result)
}

func (h *MarketHandler) DeleteCompetitor(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}
	competitorSID, err := utils.ParseSIDParam(c, "cid", id.PrefixCompetitor, "competitor")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.deleteCompetitorUC.Execute(c.Request.Context(), userID, planSID, competitorSID); err != nil {
		respondError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
