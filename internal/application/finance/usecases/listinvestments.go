package usecases

import (
	"context"

	"github.com/mizan-app/mizan/internal/application/finance/dto"
	planusecases "github.com/mizan-app/mizan/internal/application/plan/usecases"
	"github.com/mizan-app/mizan/internal/domain/finance"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// ListInvestmentsUseCase lists the investment lines of a plan together
// with the per-field aggregate totals.
type ListInvestmentsUseCase struct {
	investmentRepo finance.InvestmentRepository
	resolver       *planusecases.ResolvePlanUseCase
	logger         logger.Interface
}

// NewListInvestmentsUseCase creates a new ListInvestmentsUseCase
func NewListInvestmentsUseCase(investmentRepo finance.InvestmentRepository, resolver *planusecases.ResolvePlanUseCase, logger logger.Interface) *ListInvestmentsUseCase {
	return &ListInvestmentsUseCase{
		investmentRepo: investmentRepo,
		resolver:       resolver,
		logger:         logger,
	}
}

// Execute lists the plan's investment lines
func (uc *ListInvestmentsUseCase) Execute(ctx context.Context, userID, planSID string) (*dto.InvestmentListResponse, error) {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return nil, err
	}

	lines, err := uc.investmentRepo.ListByPlan(ctx, p.ID())
	if err != nil {
		return nil, err
	}

	return dto.ToInvestmentListResponse(lines), nil
}
