package usecases

import (
	"context"
	"fmt"

	"github.com/mizan-app/mizan/internal/application/finance/dto"
	planusecases "github.com/mizan-app/mizan/internal/application/plan/usecases"
	"github.com/mizan-app/mizan/internal/domain/finance"
	"github.com/mizan-app/mizan/internal/shared/errors"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// UpdateInvestmentLineUseCase updates one investment line. The derived
// totals are recomputed by the entity on every change.
type UpdateInvestmentLineUseCase struct {
	investmentRepo finance.InvestmentRepository
	resolver       *planusecases.ResolvePlanUseCase
	logger         logger.Interface
}

// NewUpdateInvestmentLineUseCase creates a new UpdateInvestmentLineUseCase
func NewUpdateInvestmentLineUseCase(investmentRepo finance.InvestmentRepository, resolver *planusecases.ResolvePlanUseCase, logger logger.Interface) *UpdateInvestmentLineUseCase {
	return &UpdateInvestmentLineUseCase{
		investmentRepo: investmentRepo,
		resolver:       resolver,
		logger:         logger,
	}
}

// Execute applies the requested field changes to the line
func (uc *UpdateInvestmentLineUseCase) Execute(ctx context.Context, userID, planSID, lineSID string, req dto.UpdateInvestmentLineRequest) (*dto.InvestmentLineResponse, error) {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return nil, err
	}

	line, err := uc.investmentRepo.GetBySID(ctx, p.ID(), lineSID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		line.Rename(*req.Name)
	}
	if req.Quantity != nil {
		if err := line.SetQuantity(*req.Quantity); err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("failed to update investment line: %v", err))
		}
	}
	if req.UnitPriceExclTax != nil {
		if err := line.SetUnitPriceExclTax(*req.UnitPriceExclTax); err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("failed to update investment line: %v", err))
		}
	}
	if req.TaxRate != nil {
		if err := line.SetTaxRate(*req.TaxRate); err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("failed to update investment line: %v", err))
		}
	}

	if err := uc.investmentRepo.Update(ctx, line); err != nil {
		uc.logger.Errorw("failed to update investment line", "line_sid", lineSID, "error", err)
		return nil, fmt.Errorf("failed to save investment line: %w", err)
	}

	return dto.ToInvestmentLineResponse(line), nil
}
