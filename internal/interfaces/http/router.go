package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mizan-app/mizan/internal/infrastructure/config"
	"github.com/mizan-app/mizan/internal/interfaces/http/handlers"
	"github.com/mizan-app/mizan/internal/interfaces/http/middleware"
	"github.com/mizan-app/mizan/internal/shared/logger"
	"github.com/mizan-app/mizan/internal/shared/utils"
)

// Router owns the gin engine and the handler set.
type Router struct {
	engine            *gin.Engine
	sessionMiddleware *middleware.SessionMiddleware
	sessionHandler    *handlers.SessionHandler
	planHandler       *handlers.PlanHandler
	marketHandler     *handlers.MarketHandler
	swotHandler       *handlers.SwotHandler
	investmentHandler *handlers.InvestmentHandler
	costHandler       *handlers.CostHandler
	projectionHandler *handlers.ProjectionHandler
	templateHandler   *handlers.TemplateHandler
	marketingHandler  *handlers.MarketingHandler
	reportHandler     *handlers.ReportHandler
	logger            logger.Interface
}

// Engine exposes the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// SetupRoutes configures middleware and all HTTP routes.
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		utils.OKResponse(c, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api/v1")
	api.Use(r.sessionMiddleware.Handle())
	{
		api.POST("/session", r.sessionHandler.CreateSession)

		api.GET("/templates", r.templateHandler.ListTemplates)

		api.POST("/plans", r.planHandler.GetOrCreatePlan)

		plans := api.Group("/plans/:id")
		{
			plans.GET("", r.planHandler.GetPlan)
			plans.PATCH("", r.planHandler.UpdatePlan)

			plans.GET("/market", r.marketHandler.GetMarketData)
			plans.PUT("/market", r.marketHandler.UpdateMarketData)
			plans.GET("/competitors", r.marketHandler.ListCompetitors)
			plans.POST("/competitors", r.marketHandler.AddCompetitor)
			plans.PATCH("/competitors/:cid", r.marketHandler.UpdateCompetitor)
			plans.DELETE("/competitors/:cid", r.marketHandler.DeleteCompetitor)

			plans.GET("/swot", r.swotHandler.GetSwot)
			plans.PUT("/swot", r.swotHandler.UpdateSwot)

			plans.GET("/investments", r.investmentHandler.ListInvestments)
			plans.POST("/investments", r.investmentHandler.AddInvestmentLine)
			plans.PATCH("/investments/:iid", r.investmentHandler.UpdateInvestmentLine)
			plans.DELETE("/investments/:iid", r.investmentHandler.DeleteInvestmentLine)

			plans.GET("/fixed-costs", r.costHandler.ListFixedCosts)
			plans.POST("/fixed-costs", r.costHandler.AddFixedCost)
			plans.PATCH("/fixed-costs/:cid", r.costHandler.UpdateFixedCost)
			plans.DELETE("/fixed-costs/:cid", r.costHandler.DeleteFixedCost)

			plans.GET("/variable-costs", r.costHandler.ListVariableCosts)
			plans.POST("/variable-costs", r.costHandler.AddVariableCost)
			plans.PATCH("/variable-costs/:cid", r.costHandler.UpdateVariableCost)
			plans.DELETE("/variable-costs/:cid", r.costHandler.DeleteVariableCost)

			plans.GET("/projection", r.projectionHandler.GetProjection)
			plans.PUT("/projection", r.projectionHandler.UpdateProjection)
			plans.GET("/dashboard", r.projectionHandler.GetDashboard)

			plans.POST("/template", r.templateHandler.ApplyTemplate)
			plans.GET("/marketing", r.marketingHandler.GetMarketing)
			plans.PUT("/marketing", r.marketingHandler.UpdateMarketing)
			plans.GET("/report", r.reportHandler.ExportReport)
		}
	}
}
