package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mizan-app/mizan/internal/application/template/dto"
	"github.com/mizan-app/mizan/internal/application/template/usecases"
	apperrors "github.com/mizan-app/mizan/internal/shared/errors"
	"github.com/mizan-app/mizan/internal/shared/logger"
	"github.com/mizan-app/mizan/internal/shared/utils"
)

type TemplateHandler struct {
	listTemplatesUC *usecases.ListTemplatesUseCase
	applyTemplateUC *usecases.ApplyTemplateUseCase
	logger          logger.Interface
}

func NewTemplateHandler(
	listTemplatesUC *usecases.ListTemplatesUseCase,
	applyTemplateUC *usecases.ApplyTemplateUseCase,
) *TemplateHandler {
	return &TemplateHandler{
		listTemplatesUC: listTemplatesUC,
		applyTemplateUC: applyTemplateUC,
		logger:          logger.NewLogger(),
	}
}

// ListTemplates lists the sector templates for a language. Defaults to
// French when the language query is absent or unknown.
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	result, err := h.listTemplatesUC.Execute(c.Request.Context(), c.Query("language"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ApplyTemplate replaces the plan's financial structure with a sector
// template's preset.
func (h *TemplateHandler) ApplyTemplate(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	planSID, ok := planSIDParam(c)
	if !ok {
		return
	}

	var req dto.ApplyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for apply template", "plan_sid", planSID, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.applyTemplateUC.Execute(c.Request.Context(), userID, planSID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
