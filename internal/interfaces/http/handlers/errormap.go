package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mizan-app/mizan/internal/domain/finance"
	"github.com/mizan-app/mizan/internal/domain/market"
	"github.com/mizan-app/mizan/internal/domain/marketing"
	"github.com/mizan-app/mizan/internal/domain/plan"
	"github.com/mizan-app/mizan/internal/domain/swot"
	"github.com/mizan-app/mizan/internal/domain/template"
	apperrors "github.com/mizan-app/mizan/internal/shared/errors"
	"github.com/mizan-app/mizan/internal/shared/utils"
)

// respondError writes the error response, translating domain sentinel
// errors into their HTTP status first.
func respondError(c *gin.Context, err error) {
	utils.ErrorResponseWithError(c, mapDomainError(err))
}

func mapDomainError(err error) error {
	switch {
	case errors.Is(err, plan.ErrPlanNotFound):
		return apperrors.NewNotFoundError("Business plan not found")
	case errors.Is(err, market.ErrMarketDataNotFound):
		return apperrors.NewNotFoundError("Market data not found")
	case errors.Is(err, market.ErrCompetitorNotFound):
		return apperrors.NewNotFoundError("Competitor not found")
	case errors.Is(err, swot.ErrSwotNotFound):
		return apperrors.NewNotFoundError("SWOT analysis not found")
	case errors.Is(err, marketing.ErrStrategyNotFound):
		return apperrors.NewNotFoundError("Marketing strategy not found")
	case errors.Is(err, finance.ErrInvestmentLineNotFound):
		return apperrors.NewNotFoundError("Investment line not found")
	case errors.Is(err, finance.ErrFixedCostNotFound):
		return apperrors.NewNotFoundError("Fixed cost not found")
	case errors.Is(err, finance.ErrVariableCostNotFound):
		return apperrors.NewNotFoundError("Variable cost not found")
	case errors.Is(err, finance.ErrProjectionNotFound):
		return apperrors.NewNotFoundError("Financial projection not found")
	case errors.Is(err, template.ErrTemplateNotFound):
		return apperrors.NewNotFoundError("Sector template not found")
	default:
		return err
	}
}
