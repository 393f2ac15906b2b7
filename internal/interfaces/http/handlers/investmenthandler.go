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

type InvestmentHandler struct {
	listInvestmentsUC      *usecases.ListInvestmentsUseCase
	addInvestmentLineUC    *usecases.AddInvestmentLineUseCase
	updateInvestmentLineUC *usecases.UpdateInvestmentLineUseCase
	deleteInvestmentLineUC *usecases.DeleteInvestmentLineUseCase
	logger                 logger.Interface
}

func NewInvestmentHandler(
	listInvestmentsUC *usecases.ListInvestmentsUseCase,
	addInvestmentLineUC *usecases.AddInvestmentLineUseCase,
	updateInvestmentLineUC *usecases.UpdateInvestmentLineUseCase,
	deleteInvestmentLineUC *usecases.DeleteInvestmentLineUseCase,
) *InvestmentHandler {
	return &InvestmentHandler{
		listInvestmentsUC:      listInvestmentsUC,
		addInvestmentLineUC:    addInvestmentLineUC,
		updateInvestmentLineUC: updateInvestmentLineUC,
		deleteInvestmentLineUC: deleteInvestmentLineUC,
		logger:                 logger.NewLogger(),
	}
}

// ListInvestments returns the investment lines with their aggregate
// totals.
func (h *InvestmentHandler) ListInvestments(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}

	result, err := h.listInvestmentsUC.Execute(c.Request.Context(), userID, planSID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *InvestmentHandler) AddInvestmentLine(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}

	var req dto.CreateInvestmentLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add investment line", "plan_sid", planSID, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.addInvestmentLineUC.Execute(c.Request.Context(), userID, planSID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Investment line added successfully")
}

// UpdateInvestmentLine applies a partial update and responds with the
// recomputed line totals.
func (h *InvestmentHandler) UpdateInvestmentLine(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}
	lineSID, err := utils.ParseSIDParam(c, "iid", id.PrefixInvestmentLine, "investment line")
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.UpdateInvestmentLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update investment line", "line_sid", lineSID, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.updateInvestmentLineUC.Execute(c.Request.Context(), userID, planSID, lineSID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Investment line updated successfully", result)
}

func (h *InvestmentHandler) DeleteInvestmentLine(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}
	lineSID, err := utils.ParseSIDParam(c, "iid", id.PrefixInvestmentLine, "investment line")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.deleteInvestmentLineUC.Execute(c.Request.Context(), userID, planSID, lineSID); err != nil {
		respondError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
