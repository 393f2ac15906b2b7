package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	financeusecases "github.com/mizan-app/mizan/internal/application/finance/usecases"
	marketusecases "github.com/mizan-app/mizan/internal/application/market/usecases"
	marketingusecases "github.com/mizan-app/mizan/internal/application/marketing/usecases"
	planusecases "github.com/mizan-app/mizan/internal/application/plan/usecases"
	reportusecases "github.com/mizan-app/mizan/internal/application/report/usecases"
	swotusecases "github.com/mizan-app/mizan/internal/application/swot/usecases"
	templateusecases "github.com/mizan-app/mizan/internal/application/template/usecases"
	"github.com/mizan-app/mizan/internal/infrastructure/auth"
	"github.com/mizan-app/mizan/internal/infrastructure/config"
	"github.com/mizan-app/mizan/internal/infrastructure/repository"
	"github.com/mizan-app/mizan/internal/interfaces/http/handlers"
	"github.com/mizan-app/mizan/internal/interfaces/http/middleware"
	"github.com/mizan-app/mizan/internal/shared/logger"
	"github.com/mizan-app/mizan/internal/shared/services/markdown"
)

// NewRouter assembles repositories, use cases and handlers into a
// ready-to-serve router.
func NewRouter(db *gorm.DB, cfg *config.Config) *Router {
	log := logger.NewLogger()
	registerValidators()

	planRepo := repository.NewBusinessPlanRepository(db, log)
	marketRepo := repository.NewMarketDataRepository(db, log)
	competitorRepo := repository.NewCompetitorRepository(db, log)
	swotRepo := repository.NewSwotAnalysisRepository(db, log)
	marketingRepo := repository.NewMarketingStrategyRepository(db, log)
	investmentRepo := repository.NewInvestmentLineRepository(db, log)
	fixedRepo := repository.NewFixedCostRepository(db, log)
	variableRepo := repository.NewVariableCostRepository(db, log)
	projectionRepo := repository.NewFinancialProjectionRepository(db, log)
	templateApplier := repository.NewTemplateApplier(db, log)

	markdownService := markdown.NewMarkdownService()
	sessions := auth.NewSessionService(cfg.Session.Secret, cfg.Session.ExpDays)

	resolvePlanUC := planusecases.NewResolvePlanUseCase(planRepo, log)
	getOrCreatePlanUC := planusecases.NewGetOrCreatePlanUseCase(planRepo, cfg.Plan.DefaultLanguage, log)
	updatePlanUC := planusecases.NewUpdatePlanUseCase(planRepo, resolvePlanUC, log)

	getMarketDataUC := marketusecases.NewGetMarketDataUseCase(marketRepo, resolvePlanUC, log)
	updateMarketDataUC := marketusecases.NewUpdateMarketDataUseCase(marketRepo, resolvePlanUC, log)
	listCompetitorsUC := marketusecases.NewListCompetitorsUseCase(competitorRepo, resolvePlanUC, log)
	addCompetitorUC := marketusecases.NewAddCompetitorUseCase(competitorRepo, resolvePlanUC, log)
	updateCompetitorUC := marketusecases.NewUpdateCompetitorUseCase(competitorRepo, resolvePlanUC, log)
	deleteCompetitorUC := marketusecases.NewDeleteCompetitorUseCase(competitorRepo, resolvePlanUC, log)

	getSwotUC := swotusecases.NewGetSwotUseCase(swotRepo, resolvePlanUC, log)
	updateSwotUC := swotusecases.NewUpdateSwotUseCase(swotRepo, resolvePlanUC, log)

	getMarketingUC := marketingusecases.NewGetMarketingUseCase(marketingRepo, resolvePlanUC, log)
	updateMarketingUC := marketingusecases.NewUpdateMarketingUseCase(marketingRepo, resolvePlanUC, log)

	listInvestmentsUC := financeusecases.NewListInvestmentsUseCase(investmentRepo, resolvePlanUC, log)
	addInvestmentLineUC := financeusecases.NewAddInvestmentLineUseCase(investmentRepo, resolvePlanUC, log)
	updateInvestmentLineUC := financeusecases.NewUpdateInvestmentLineUseCase(investmentRepo, resolvePlanUC, log)
	deleteInvestmentLineUC := financeusecases.NewDeleteInvestmentLineUseCase(investmentRepo, resolvePlanUC, log)
	fixedCostUC := financeusecases.NewFixedCostUseCases(fixedRepo, resolvePlanUC, log)
	variableCostUC := financeusecases.NewVariableCostUseCases(variableRepo, resolvePlanUC, log)
	getProjectionUC := financeusecases.NewGetProjectionUseCase(projectionRepo, fixedRepo, variableRepo, resolvePlanUC, log)
	updateProjectionUC := financeusecases.NewUpdateProjectionUseCase(projectionRepo, fixedRepo, variableRepo, resolvePlanUC, log)
	getDashboardUC := financeusecases.NewGetDashboardUseCase(
		marketRepo, competitorRepo, swotRepo, marketingRepo,
		investmentRepo, fixedRepo, variableRepo, projectionRepo,
		resolvePlanUC, log,
	)

	listTemplatesUC := templateusecases.NewListTemplatesUseCase(log)
	applyTemplateUC := templateusecases.NewApplyTemplateUseCase(templateApplier, resolvePlanUC, log)

	exportReportUC := reportusecases.NewExportReportUseCase(
		marketRepo, competitorRepo, swotRepo, marketingRepo,
		investmentRepo, fixedRepo, variableRepo, projectionRepo,
		markdownService, resolvePlanUC, log,
	)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	return &Router{
		engine:            gin.New(),
		sessionMiddleware: middleware.NewSessionMiddleware(sessions, cfg.Session, log),
		sessionHandler:    handlers.NewSessionHandler(),
		planHandler:       handlers.NewPlanHandler(getOrCreatePlanUC, updatePlanUC, resolvePlanUC),
		marketHandler: handlers.NewMarketHandler(
			getMarketDataUC, updateMarketDataUC,
			listCompetitorsUC, addCompetitorUC, updateCompetitorUC, deleteCompetitorUC,
		),
		swotHandler:       handlers.NewSwotHandler(getSwotUC, updateSwotUC),
		investmentHandler: handlers.NewInvestmentHandler(listInvestmentsUC, addInvestmentLineUC, updateInvestmentLineUC, deleteInvestmentLineUC),
		costHandler:       handlers.NewCostHandler(fixedCostUC, variableCostUC),
		projectionHandler: handlers.NewProjectionHandler(getProjectionUC, updateProjectionUC, getDashboardUC),
		templateHandler:   handlers.NewTemplateHandler(listTemplatesUC, applyTemplateUC),
		marketingHandler:  handlers.NewMarketingHandler(getMarketingUC, updateMarketingUC),
		reportHandler:     handlers.NewReportHandler(exportReportUC),
		logger:            log,
	}
}
