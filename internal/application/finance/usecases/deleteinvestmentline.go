package usecases

import (
	"context"

	planusecases "github.com/mizan-app/mizan/internal/application/plan/usecases"
	"github.com/mizan-app/mizan/internal/domain/finance"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// DeleteInvestmentLineUseCase removes one investment line from a plan
type DeleteInvestmentLineUseCase struct {
	investmentRepo finance.InvestmentRepository
	resolver       *planusecases.ResolvePlanUseCase
	logger         logger.Interface
}

// NewDeleteInvestmentLineUseCase creates a new DeleteInvestmentLineUseCase
func NewDeleteInvestmentLineUseCase(investmentRepo finance.InvestmentRepository, resolver *planusecases.ResolvePlanUseCase, logger logger.Interface) *DeleteInvestmentLineUseCase {
	return &DeleteInvestmentLineUseCase{
		investmentRepo: investmentRepo,
		resolver:       resolver,
		logger:         logger,
	}
}

// Execute deletes the line
func (uc *DeleteInvestmentLineUseCase) Execute(ctx context.Context, userID, planSID, lineSID string) error {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return err
	}

	if err := uc.investmentRepo.Delete(ctx, p.ID(), lineSID); err != nil {
		return err
	}

	uc.logger.Infow("investment line deleted", "plan_sid", planSID, "line_sid", lineSID)
	return nil
}
