package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	planusecases "github.com/mizan-app/mizan/internal/application/plan/usecases"
	"github.com/mizan-app/mizan/internal/application/report/dto"
	"github.com/mizan-app/mizan/internal/domain/finance"
	"github.com/mizan-app/mizan/internal/domain/market"
	"github.com/mizan-app/mizan/internal/domain/marketing"
	"github.com/mizan-app/mizan/internal/domain/plan"
	"github.com/mizan-app/mizan/internal/domain/swot"
	"github.com/mizan-app/mizan/internal/shared/lang"
	"github.com/mizan-app/mizan/internal/shared/logger"
	"github.com/mizan-app/mizan/internal/shared/services/markdown"
)

// ExportReportUseCase renders the whole plan as a markdown document,
// optionally converted to sanitized HTML. Sections the user never
// filled are skipped.
type ExportReportUseCase struct {
	marketRepo      market.MarketDataRepository
	competitorRepo  market.CompetitorRepository
	swotRepo        swot.Repository
	marketingRepo   marketing.Repository
	investmentRepo  finance.InvestmentRepository
	fixedRepo       finance.FixedCostRepository
	variableRepo    finance.VariableCostRepository
	projectionRepo  finance.ProjectionRepository
	markdownService markdown.MarkdownService
	resolver        *planusecases.ResolvePlanUseCase
	logger          logger.Interface
}

// NewExportReportUseCase creates a new ExportReportUseCase
func NewExportReportUseCase(
	marketRepo market.MarketDataRepository,
	competitorRepo market.CompetitorRepository,
	swotRepo swot.Repository,
	marketingRepo marketing.Repository,
	investmentRepo finance.InvestmentRepository,
	fixedRepo finance.FixedCostRepository,
	variableRepo finance.VariableCostRepository,
	projectionRepo finance.ProjectionRepository,
	markdownService markdown.MarkdownService,
	resolver *planusecases.ResolvePlanUseCase,
	logger logger.Interface,
) *ExportReportUseCase {
	return &ExportReportUseCase{
		marketRepo:      marketRepo,
		competitorRepo:  competitorRepo,
		swotRepo:        swotRepo,
		marketingRepo:   marketingRepo,
		investmentRepo:  investmentRepo,
		fixedRepo:       fixedRepo,
		variableRepo:    variableRepo,
		projectionRepo:  projectionRepo,
		markdownService: markdownService,
		resolver:        resolver,
		logger:          logger,
	}
}

// Execute builds the report in the requested format
func (uc *ExportReportUseCase) Execute(ctx context.Context, userID, planSID string, req dto.ExportReportRequest) (*dto.ReportResponse, error) {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return nil, err
	}

	document, err := uc.buildMarkdown(ctx, p)
	if err != nil {
		return nil, err
	}

	format := req.Format
	if format == "" {
		format = dto.FormatHTML
	}

	content := document
	if format == dto.FormatHTML {
		content, err = uc.markdownService.ToHTMLSanitized(document)
		if err != nil {
			uc.logger.Errorw("failed to render report html", "plan_sid", planSID, "error", err)
			return nil, fmt.Errorf("failed to render report: %w", err)
		}
	}

	return &dto.ReportResponse{
		Format:      format,
		Content:     content,
		GeneratedAt: time.Now(),
	}, nil
}

func (uc *ExportReportUseCase) buildMarkdown(ctx context.Context, p *plan.BusinessPlan) (string, error) {
	labels := labelsFor(p.Language())
	var b strings.Builder

	title := p.ProjectName()
	if title == "" {
		title = labels.untitled
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if p.Sector() != "" {
		fmt.Fprintf(&b, "- %s: %s\n", labels.sector, p.Sector())
	}
	if p.CityRegion() != "" {
		fmt.Fprintf(&b, "- %s: %s\n", labels.cityRegion, p.CityRegion())
	}
	b.WriteString("\n")

	if err := uc.writeMarketSection(ctx, &b, p, labels); err != nil {
		return "", err
	}
	if err := uc.writeSwotSection(ctx, &b, p, labels); err != nil {
		return "", err
	}
	if err := uc.writeFinanceSection(ctx, &b, p, labels); err != nil {
		return "", err
	}
	if err := uc.writeMarketingSection(ctx, &b, p, labels); err != nil {
		return "", err
	}

	return b.String(), nil
}

func (uc *ExportReportUseCase) writeMarketSection(ctx context.Context, b *strings.Builder, p *plan.BusinessPlan, labels reportLabels) error {
	data, err := uc.marketRepo.GetByPlan(ctx, p.ID())
	if err != nil && !errors.Is(err, market.ErrMarketDataNotFound) {
		return err
	}
	competitors, err := uc.competitorRepo.ListByPlan(ctx, p.ID())
	if err != nil {
		return err
	}
	if data == nil && len(competitors) == 0 {
		return nil
	}

	fmt.Fprintf(b, "## %s\n\n", labels.marketSection)
	if data != nil {
		writeField(b, labels.targetCustomer, data.TargetCustomer())
		writeField(b, labels.marketSize, data.MarketSize())
		writeField(b, labels.problemSolution, data.ProblemSolution())
	}
	if len(competitors) > 0 {
		fmt.Fprintf(b, "### %s\n\n", labels.competitors)
		fmt.Fprintf(b, "| %s | %s | %s | %s |\n|---|---|---|---|\n", labels.name, labels.price, labels.advantages, labels.weaknesses)
		for _, c := range competitors {
			fmt.Fprintf(b, "| %s | %.2f | %s | %s |\n", c.Name(), c.Price(), c.Advantages(), c.Weaknesses())
		}
		b.WriteString("\n")
	}
	return nil
}

func (uc *ExportReportUseCase) writeSwotSection(ctx context.Context, b *strings.Builder, p *plan.BusinessPlan, labels reportLabels) error {
	analysis, err := uc.swotRepo.GetByPlan(ctx, p.ID())
	if err != nil {
		if errors.Is(err, swot.ErrSwotNotFound) {
			return nil
		}
		return err
	}
	if !analysis.HasEntries() {
		return nil
	}

	fmt.Fprintf(b, "## %s\n\n", labels.swotSection)
	writeList(b, labels.strengths, analysis.Strengths())
	writeList(b, labels.weaknesses, analysis.Weaknesses())
	writeList(b, labels.opportunities, analysis.Opportunities())
	writeList(b, labels.threats, analysis.Threats())
	return nil
}

func (uc *ExportReportUseCase) writeFinanceSection(ctx context.Context, b *strings.Builder, p *plan.BusinessPlan, labels reportLabels) error {
	investments, err := uc.investmentRepo.ListByPlan(ctx, p.ID())
	if err != nil {
		return err
	}
	fixed, err := uc.fixedRepo.ListByPlan(ctx, p.ID())
	if err != nil {
		return err
	}
	variable, err := uc.variableRepo.ListByPlan(ctx, p.ID())
	if err != nil {
		return err
	}
	projection, err := uc.projectionRepo.GetByPlan(ctx, p.ID())
	if err != nil && !errors.Is(err, finance.ErrProjectionNotFound) {
		return err
	}
	if len(investments) == 0 && len(fixed) == 0 && len(variable) == 0 && projection == nil {
		return nil
	}

	fmt.Fprintf(b, "## %s\n\n", labels.financeSection)

	if len(investments) > 0 {
		fmt.Fprintf(b, "### %s\n\n", labels.investments)
		fmt.Fprintf(b, "| %s | %s | %s | %s |\n|---|---|---|---|\n", labels.name, labels.quantity, labels.unitPrice, labels.totalInclTax)
		for _, line := range investments {
			fmt.Fprintf(b, "| %s | %.2f | %.2f | %.2f |\n", line.Name(), line.Quantity(), line.UnitPriceExclTax(), line.Totals().TotalInclTax)
		}
		agg := finance.SumLineTotals(investments)
		fmt.Fprintf(b, "\n%s: **%.2f %s**\n\n", labels.totalInvestment, agg.TotalInclTax, labels.currency)
	}

	if len(fixed) > 0 {
		fmt.Fprintf(b, "### %s\n\n", labels.fixedCosts)
		for _, cost := range fixed {
			fmt.Fprintf(b, "- %s: %.2f %s\n", cost.Name(), cost.MonthlyAmount(), labels.currency)
		}
		fmt.Fprintf(b, "\n%s: **%.2f %s**\n\n", labels.totalMonthly, finance.TotalFixedCosts(fixed), labels.currency)
	}

	if len(variable) > 0 {
		fmt.Fprintf(b, "### %s\n\n", labels.variableCosts)
		for _, cost := range variable {
			fmt.Fprintf(b, "- %s: %.1f%%\n", cost.Name(), cost.RateOfSales())
		}
		b.WriteString("\n")
	}

	if projection != nil {
		outputs := finance.ComputeProjection(projection.Inputs(
			finance.TotalFixedCosts(fixed),
			finance.TotalVariableRate(variable),
		))
		fmt.Fprintf(b, "### %s\n\n", labels.projection)
		fmt.Fprintf(b, "- %s: %.2f %s\n", labels.monthlyRevenue, outputs.MonthlyRevenue, labels.currency)
		fmt.Fprintf(b, "- %s: %.2f %s\n", labels.monthlyProfit, outputs.MonthlyProfit, labels.currency)
		fmt.Fprintf(b, "- %s: %.1f%%\n", labels.profitMargin, outputs.ProfitMarginPercent)
		fmt.Fprintf(b, "- %s: %d\n", labels.breakEven, outputs.BreakEvenUnits)
		fmt.Fprintf(b, "- %s: %.2f / %.2f / %.2f %s\n\n", labels.threeYearRevenue,
			projection.Year1Revenue(), outputs.Year2Revenue, outputs.Year3Revenue, labels.currency)
	}

	return nil
}

func (uc *ExportReportUseCase) writeMarketingSection(ctx context.Context, b *strings.Builder, p *plan.BusinessPlan, labels reportLabels) error {
	strategy, err := uc.marketingRepo.GetByPlan(ctx, p.ID())
	if err != nil {
		if errors.Is(err, marketing.ErrStrategyNotFound) {
			return nil
		}
		return err
	}

	fmt.Fprintf(b, "## %s\n\n", labels.marketingSection)
	writeField(b, labels.salesStrategy, strategy.SalesStrategy())
	writeField(b, labels.digitalMarketing, strategy.DigitalMarketing())
	writeList(b, labels.channels, strategy.Channels())
	return nil
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "**%s**\n\n%s\n\n", label, value)
}

func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "**%s**\n\n", label)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

type reportLabels struct {
	untitled         string
	sector           string
	cityRegion       string
	marketSection    string
	targetCustomer   string
	marketSize       string
	problemSolution  string
	competitors      string
	name             string
	price            string
	advantages       string
	weaknesses       string
	swotSection      string
	strengths        string
	opportunities    string
	threats          string
	financeSection   string
	investments      string
	quantity         string
	unitPrice        string
	totalInclTax     string
	totalInvestment  string
	fixedCosts       string
	totalMonthly     string
	variableCosts    string
	projection       string
	monthlyRevenue   string
	monthlyProfit    string
	profitMargin     string
	breakEven        string
	threeYearRevenue string
	marketingSection string
	salesStrategy    string
	digitalMarketing string
	channels         string
	currency         string
}

func labelsFor(language string) reportLabels {
	if language == lang.Arabic {
		return reportLabels{
			untitled:         "مشروعي",
			sector:           "القطاع",
			cityRegion:       "المدينة / الجهة",
			marketSection:    "دراسة السوق",
			targetCustomer:   "الزبون المستهدف",
			marketSize:       "حجم السوق",
			problemSolution:  "المشكل والحل",
			competitors:      "المنافسون",
			name:             "الاسم",
			price:            "الثمن",
			advantages:       "نقاط القوة",
			weaknesses:       "نقاط الضعف",
			swotSection:      "تحليل SWOT",
			strengths:        "نقاط القوة",
			opportunities:    "الفرص",
			threats:          "التهديدات",
			financeSection:   "الدراسة المالية",
			investments:      "الاستثمارات",
			quantity:         "الكمية",
			unitPrice:        "ثمن الوحدة",
			totalInclTax:     "المجموع مع الضريبة",
			totalInvestment:  "مجموع الاستثمار",
			fixedCosts:       "التكاليف الثابتة",
			totalMonthly:     "المجموع الشهري",
			variableCosts:    "التكاليف المتغيرة",
			projection:       "التوقعات المالية",
			monthlyRevenue:   "رقم المعاملات الشهري",
			monthlyProfit:    "الربح الشهري",
			profitMargin:     "هامش الربح",
			breakEven:        "عتبة المردودية (وحدات)",
			threeYearRevenue: "رقم المعاملات على 3 سنوات",
			marketingSection: "استراتيجية التسويق",
			salesStrategy:    "استراتيجية البيع",
			digitalMarketing: "التسويق الرقمي",
			channels:         "قنوات التواصل",
			currency:         "درهم",
		}
	}

	return reportLabels{
		untitled:         "Mon projet",
		sector:           "Secteur",
		cityRegion:       "Ville / Région",
		marketSection:    "Étude de marché",
		targetCustomer:   "Client cible",
		marketSize:       "Taille du marché",
		problemSolution:  "Problème et solution",
		competitors:      "Concurrents",
		name:             "Nom",
		price:            "Prix",
		advantages:       "Avantages",
		weaknesses:       "Faiblesses",
		swotSection:      "Analyse SWOT",
		strengths:        "Forces",
		opportunities:    "Opportunités",
		threats:          "Menaces",
		financeSection:   "Étude financière",
		investments:      "Investissements",
		quantity:         "Quantité",
		unitPrice:        "Prix unitaire HT",
		totalInclTax:     "Total TTC",
		totalInvestment:  "Total investissement",
		fixedCosts:       "Charges fixes",
		totalMonthly:     "Total mensuel",
		variableCosts:    "Charges variables",
		projection:       "Projection financière",
		monthlyRevenue:   "Chiffre d'affaires mensuel",
		monthlyProfit:    "Bénéfice mensuel",
		profitMargin:     "Marge bénéficiaire",
		breakEven:        "Seuil de rentabilité (unités)",
		threeYearRevenue: "Chiffre d'affaires sur 3 ans",
		marketingSection: "Stratégie marketing",
		salesStrategy:    "Stratégie de vente",
		digitalMarketing: "Marketing digital",
		channels:         "Canaux de communication",
		currency:         "MAD",
	}
}
