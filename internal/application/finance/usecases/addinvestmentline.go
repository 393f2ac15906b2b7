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

// AddInvestmentLineUseCase appends one line to the plan's investment
// table. An omitted tax rate falls back to the standard 20%.
type AddInvestmentLineUseCase struct {
	investmentRepo finance.InvestmentRepository
	resolver       *planusecases.ResolvePlanUseCase
	logger         logger.Interface
}

// NewAddInvestmentLineUseCase creates a new AddInvestmentLineUseCase
func NewAddInvestmentLineUseCase(investmentRepo finance.InvestmentRepository, resolver *planusecases.ResolvePlanUseCase, logger logger.Interface) *AddInvestmentLineUseCase {
	return &AddInvestmentLineUseCase{
		investmentRepo: investmentRepo,
		resolver:       resolver,
		logger:         logger,
	}
}

// Execute creates the line and returns it with its derived totals
func (uc *AddInvestmentLineUseCase) Execute(ctx context.Context, userID, planSID string, req dto.CreateInvestmentLineRequest) (*dto.InvestmentLineResponse, error) {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return nil, err
	}

	taxRate := finance.StandardTaxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}

	line, err := finance.NewInvestmentLine(p.ID(), req.Name, req.Quantity, req.UnitPriceExclTax, taxRate)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("failed to create investment line: %v", err))
	}

	if err := uc.investmentRepo.Create(ctx, line); err != nil {
		uc.logger.Errorw("failed to persist investment line", "plan_sid", planSID, "error", err)
		return nil, fmt.Errorf("failed to save investment line: %w", err)
	}

	uc.logger.Infow("investment line added", "plan_sid", planSID, "line_sid", line.SID())
	return dto.ToInvestmentLineResponse(line), nil
}
