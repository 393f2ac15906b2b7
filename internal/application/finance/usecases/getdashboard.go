package usecases

import (
	"context"
	"errors"

	"github.com/mizan-app/mizan/internal/application/finance/dto"
	planusecases "github.com/mizan-app/mizan/internal/application/plan/usecases"
	"github.com/mizan-app/mizan/internal/domain/finance"
	"github.com/mizan-app/mizan/internal/domain/market"
	"github.com/mizan-app/mizan/internal/domain/marketing"
	"github.com/mizan-app/mizan/internal/domain/swot"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// GetDashboardUseCase assembles the plan's health view: the section
// completion rate, the headline projection metrics and the advisory
// flags.
type GetDashboardUseCase struct {
	marketRepo     market.MarketDataRepository
	competitorRepo market.CompetitorRepository
	swotRepo       swot.Repository
	marketingRepo  marketing.Repository
	investmentRepo finance.InvestmentRepository
	fixedRepo      finance.FixedCostRepository
	variableRepo   finance.VariableCostRepository
	projectionRepo finance.ProjectionRepository
	resolver       *planusecases.ResolvePlanUseCase
	logger         logger.Interface
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase
func NewGetDashboardUseCase(
	marketRepo market.MarketDataRepository,
	competitorRepo market.CompetitorRepository,
	swotRepo swot.Repository,
	marketingRepo marketing.Repository,
	investmentRepo finance.InvestmentRepository,
	fixedRepo finance.FixedCostRepository,
	variableRepo finance.VariableCostRepository,
	projectionRepo finance.ProjectionRepository,
	resolver *planusecases.ResolvePlanUseCase,
	logger logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		marketRepo:     marketRepo,
		competitorRepo: competitorRepo,
		swotRepo:       swotRepo,
		marketingRepo:  marketingRepo,
		investmentRepo: investmentRepo,
		fixedRepo:      fixedRepo,
		variableRepo:   variableRepo,
		projectionRepo: projectionRepo,
		resolver:       resolver,
		logger:         logger,
	}
}

// Execute builds the dashboard for the plan
func (uc *GetDashboardUseCase) Execute(ctx context.Context, userID, planSID string) (*dto.DashboardResponse, error) {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return nil, err
	}

	flags := finance.SectionFlags{ProjectNamed: p.ProjectName() != ""}

	marketData, err := uc.marketRepo.GetByPlan(ctx, p.ID())
	if err != nil && !errors.Is(err, market.ErrMarketDataNotFound) {
		return nil, err
	}
	if marketData != nil {
		flags.TargetCustomerDescribed = marketData.HasTargetCustomer()
	}

	competitorCount, err := uc.competitorRepo.CountByPlan(ctx, p.ID())
	if err != nil {
		return nil, err
	}
	flags.CompetitorsRecorded = competitorCount > 0

	analysis, err := uc.swotRepo.GetByPlan(ctx, p.ID())
	if err != nil && !errors.Is(err, swot.ErrSwotNotFound) {
		return nil, err
	}
	if analysis != nil {
		flags.SwotRecorded = analysis.HasEntries()
	}

	strategy, err := uc.marketingRepo.GetByPlan(ctx, p.ID())
	if err != nil && !errors.Is(err, marketing.ErrStrategyNotFound) {
		return nil, err
	}
	if strategy != nil {
		flags.SalesStrategyDescribed = strategy.HasSalesStrategy()
	}

	investments, err := uc.investmentRepo.ListByPlan(ctx, p.ID())
	if err != nil {
		return nil, err
	}
	flags.InvestmentsRecorded = len(investments) > 0

	projection, err := uc.projectionRepo.GetByPlan(ctx, p.ID())
	if err != nil && !errors.Is(err, finance.ErrProjectionNotFound) {
		return nil, err
	}
	if projection == nil {
		projection, err = finance.NewFinancialProjection(p.ID())
		if err != nil {
			return nil, err
		}
	}
	flags.SalesHypothesisSet = projection.HasHypothesis()

	fixed, err := uc.fixedRepo.ListByPlan(ctx, p.ID())
	if err != nil {
		return nil, err
	}
	variable, err := uc.variableRepo.ListByPlan(ctx, p.ID())
	if err != nil {
		return nil, err
	}

	totalFixed := finance.TotalFixedCosts(fixed)
	outputs := finance.ComputeProjection(projection.Inputs(
		totalFixed,
		finance.TotalVariableRate(variable),
	))
	completion := flags.CompletionRate()
	advice := finance.ComputeAdvice(outputs.ProfitMarginPercent, int(competitorCount), completion, outputs.Profitable)

	return &dto.DashboardResponse{
		CompletionRate:      completion,
		Sections:            dto.ToSections(flags),
		TotalInvestment:     finance.SumLineTotals(investments).TotalInclTax,
		MonthlyRevenue:      outputs.MonthlyRevenue,
		MonthlyFixedCosts:   totalFixed,
		MonthlyVariableCost: outputs.MonthlyVariableCost,
		MonthlyProfit:       outputs.MonthlyProfit,
		Profitable:          outputs.Profitable,
		ProfitMarginPercent: outputs.ProfitMarginPercent,
		BreakEvenUnits:      outputs.BreakEvenUnits,
		CompetitorCount:     int(competitorCount),
		Advice:              dto.ToAdvice(advice),
	}, nil
}
