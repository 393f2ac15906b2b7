package usecases

import (
	"context"
	"fmt"

	planusecases "github.com/mizan-app/mizan/internal/application/plan/usecases"
	"github.com/mizan-app/mizan/internal/application/template/dto"
	"github.com/mizan-app/mizan/internal/domain/template"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// ApplyTemplateUseCase replaces the plan's cost structure with a
// sector template's seed data. The applier guarantees the replacement
// is all-or-nothing.
type ApplyTemplateUseCase struct {
	applier  template.Applier
	resolver *planusecases.ResolvePlanUseCase
	logger   logger.Interface
}

// NewApplyTemplateUseCase creates a new ApplyTemplateUseCase
func NewApplyTemplateUseCase(applier template.Applier, resolver *planusecases.ResolvePlanUseCase, logger logger.Interface) *ApplyTemplateUseCase {
	return &ApplyTemplateUseCase{
		applier:  applier,
		resolver: resolver,
		logger:   logger,
	}
}

// Execute applies the template named by req.Key to the plan
func (uc *ApplyTemplateUseCase) Execute(ctx context.Context, userID, planSID string, req dto.ApplyTemplateRequest) (*dto.ApplyTemplateResponse, error) {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return nil, err
	}

	tpl, err := template.Get(p.Language(), req.Key)
	if err != nil {
		return nil, err
	}

	set, err := template.BuildReplacementSet(p.ID(), tpl)
	if err != nil {
		return nil, fmt.Errorf("failed to build replacement set: %w", err)
	}

	if err := uc.applier.ReplacePlanFinancials(ctx, p.ID(), set); err != nil {
		uc.logger.Errorw("failed to apply template", "plan_sid", planSID, "key", req.Key, "error", err)
		return nil, err
	}

	uc.logger.Infow("template applied", "plan_sid", planSID, "key", req.Key)
	return &dto.ApplyTemplateResponse{
		Key:                tpl.Key,
		InvestmentsApplied: len(set.Investments),
		FixedCostsApplied:  len(set.FixedCosts),
		VariableApplied:    len(set.VariableCosts),
		HypothesisApplied:  set.Hypothesis != nil,
	}, nil
}
