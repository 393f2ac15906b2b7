package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mizan-app/mizan/internal/application/report/dto"
	"github.com/mizan-app/mizan/internal/application/report/usecases"
	apperrors "github.com/mizan-app/mizan/internal/shared/errors"
	"github.com/mizan-app/mizan/internal/shared/logger"
	"github.com/mizan-app/mizan/internal/shared/utils"
)

type ReportHandler struct {
	exportReportUC *usecases.ExportReportUseCase
	logger         logger.Interface
}

func NewReportHandler(exportReportUC *usecases.ExportReportUseCase) *ReportHandler {
	return &ReportHandler{
		exportReportUC: exportReportUC,
		logger:         logger.NewLogger(),
	}
}

// ExportReport renders the full plan as html (default) or raw markdown
// via the format query parameter.
func (h *ReportHandler) ExportReport(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}

	var req dto.ExportReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Warnw("invalid report format", "plan_sid", planSID, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.exportReportUC.Execute(c.Request.Context(), userID, planSID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
