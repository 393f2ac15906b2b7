package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mizan-app/mizan/internal/domain/finance"
	"github.com/mizan-app/mizan/internal/domain/template"
	"github.com/mizan-app/mizan/internal/infrastructure/persistence/mappers"
	"github.com/mizan-app/mizan/internal/infrastructure/persistence/models"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// TemplateApplier implements template.Applier on top of a single
// database transaction, so a failed application leaves the plan's cost
// structure untouched.
type TemplateApplier struct {
	db               *gorm.DB
	logger           logger.Interface
	investmentMapper mappers.InvestmentLineMapper
	fixedMapper      mappers.FixedCostMapper
	variableMapper   mappers.VariableCostMapper
	projectionMapper mappers.FinancialProjectionMapper
}

// NewTemplateApplier creates a new TemplateApplier
func NewTemplateApplier(db *gorm.DB, logger logger.Interface) template.Applier {
	return &TemplateApplier{
		db:               db,
		logger:           logger,
		investmentMapper: mappers.NewInvestmentLineMapper(),
		fixedMapper:      mappers.NewFixedCostMapper(),
		variableMapper:   mappers.NewVariableCostMapper(),
		projectionMapper: mappers.NewFinancialProjectionMapper(),
	}
}

// ReplacePlanFinancials deletes every investment, fixed-cost and
// variable-cost row of the plan, inserts the replacement set in seed
// order, and applies the sales hypothesis to the plan's projection
// record, creating one when the plan has none yet. The whole sequence
// runs in one transaction.
func (a *TemplateApplier) ReplacePlanFinancials(ctx context.Context, planID uint, set template.ReplacementSet) error {
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("business_plan_id = ?", planID).Delete(&models.InvestmentLineModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear investment lines: %w", err)
		}
		if err := tx.Where("business_plan_id = ?", planID).Delete(&models.FixedCostModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear fixed costs: %w", err)
		}
		if err := tx.Where("business_plan_id = ?", planID).Delete(&models.VariableCostModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear variable costs: %w", err)
		}

		for _, line := range set.Investments {
			model := a.investmentMapper.ToModel(line)
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to insert investment line %q: %w", line.Name(), err)
			}
			line.SetID(model.ID)
		}
		for _, cost := range set.FixedCosts {
			model := a.fixedMapper.ToModel(cost)
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to insert fixed cost %q: %w", cost.Name(), err)
			}
			cost.SetID(model.ID)
		}
		for _, cost := range set.VariableCosts {
			model := a.variableMapper.ToModel(cost)
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to insert variable cost %q: %w", cost.Name(), err)
			}
			cost.SetID(model.ID)
		}

		if set.Hypothesis != nil {
			if err := a.applyHypothesis(tx, planID, set.Hypothesis); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		a.logger.Error("failed to replace plan financials", "plan_id", planID, "error", err)
		return err
	}

	return nil
}

func (a *TemplateApplier) applyHypothesis(tx *gorm.DB, planID uint, hypothesis *template.SalesHypothesis) error {
	var model models.FinancialProjectionModel

	err := tx.Where("business_plan_id = ?", planID).First(&model).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		projection, err := finance.NewFinancialProjection(planID)
		if err != nil {
			return fmt.Errorf("failed to build projection: %w", err)
		}
		if err := projection.SetSalesHypothesis(hypothesis.MonthlyOrders, hypothesis.AvgPrice); err != nil {
			return fmt.Errorf("failed to apply sales hypothesis: %w", err)
		}
		if err := tx.Create(a.projectionMapper.ToModel(projection)).Error; err != nil {
			return fmt.Errorf("failed to insert projection: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("failed to load projection: %w", err)
	}

	projection := a.projectionMapper.ToDomain(&model)
	// A template always restates the revenue baseline, so a manual
	// override from before the application no longer applies.
	projection.ClearRevenueOverride()
	if err := projection.SetSalesHypothesis(hypothesis.MonthlyOrders, hypothesis.AvgPrice); err != nil {
		return fmt.Errorf("failed to apply sales hypothesis: %w", err)
	}

	updated := a.projectionMapper.ToModel(projection)
	if err := tx.Model(&models.FinancialProjectionModel{}).
		Where("id = ?", projection.ID()).
		Updates(map[string]interface{}{
			"monthly_orders":     updated.MonthlyOrders,
			"avg_price":          updated.AvgPrice,
			"year_1_revenue":     updated.Year1Revenue,
			"revenue_overridden": updated.RevenueOverridden,
			"updated_at":         updated.UpdatedAt,
		}).Error; err != nil {
		return fmt.Errorf("failed to update projection: %w", err)
	}

	return nil
}
