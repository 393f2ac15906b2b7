package migration

import (
	"github.com/mizan-app/mizan/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistent model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.BusinessPlanModel{},
		&models.MarketDataModel{},
		&models.CompetitorModel{},
		&models.SwotAnalysisModel{},
		&models.InvestmentLineModel{},
		&models.FixedCostModel{},
		&models.VariableCostModel{},
		&models.FinancialProjectionModel{},
		&models.MarketingStrategyModel{},
	}
}
