package template

import "github.com/mizan-app/mizan/internal/shared/lang"

// catalog indexes the reference datasets by language then sector key.
// The figures are illustrative defaults for the Moroccan market, in
// MAD; they are content, not computation.
var catalog = map[string]map[string]*SectorTemplate{
	lang.French: {
		KeyImprimerie: {
			Key:   KeyImprimerie,
			Label: "Atelier impression / communication",
			Investments: []InvestmentSeed{
				{Name: "Machine d'impression", Quantity: 1, UnitPriceExclTax: 25000, TaxRate: 20},
				{Name: "Machine de découpe laser", Quantity: 1, UnitPriceExclTax: 40000, TaxRate: 20},
				{Name: "PC design", Quantity: 2, UnitPriceExclTax: 6000, TaxRate: 20},
				{Name: "Bureau et chaises", Quantity: 1, UnitPriceExclTax: 8000, TaxRate: 20},
				{Name: "Logiciels (Adobe Suite)", Quantity: 1, UnitPriceExclTax: 5000, TaxRate: 20},
			},
			FixedCosts: []CostSeed{
				{Name: "Loyer", MonthlyAmount: 3500},
				{Name: "Internet + téléphone", MonthlyAmount: 400},
				{Name: "Électricité", MonthlyAmount: 800},
				{Name: "Salaire employé", MonthlyAmount: 4000},
			},
			VariableCosts: []CostSeed{
				{Name: "Consommables (papier/encre)", RateOfSales: 25},
				{Name: "Emballage et livraison", RateOfSales: 5},
			},
			SalesHypothesis: &SalesHypothesis{AvgPrice: 150, MonthlyOrders: 150},
		},
		KeyCafeRestaurant: {
			Key:   KeyCafeRestaurant,
			Label: "Café / Restaurant",
			Investments: []InvestmentSeed{
				{Name: "Équipement cuisine", Quantity: 1, UnitPriceExclTax: 45000, TaxRate: 20},
				{Name: "Mobilier (tables, chaises)", Quantity: 1, UnitPriceExclTax: 30000, TaxRate: 20},
				{Name: "Caisse enregistreuse + TPE", Quantity: 1, UnitPriceExclTax: 8000, TaxRate: 20},
				{Name: "Réfrigérateur/Congélateur", Quantity: 2, UnitPriceExclTax: 6000, TaxRate: 20},
				{Name: "Décoration et aménagement", Quantity: 1, UnitPriceExclTax: 15000, TaxRate: 20},
			},
			FixedCosts: []CostSeed{
				{Name: "Loyer", MonthlyAmount: 8000},
				{Name: "Salaires (2 employés)", MonthlyAmount: 8000},
				{Name: "Électricité et eau", MonthlyAmount: 1500},
				{Name: "Internet + téléphone", MonthlyAmount: 300},
			},
			VariableCosts: []CostSeed{
				{Name: "Matières premières (nourriture)", RateOfSales: 30},
				{Name: "Emballages", RateOfSales: 3},
			},
			SalesHypothesis: &SalesHypothesis{AvgPrice: 80, MonthlyOrders: 600},
		},
		KeyEcommerce: {
			Key:   KeyEcommerce,
			Label: "E-commerce / Boutique en ligne",
			Investments: []InvestmentSeed{
				{Name: "Site web e-commerce", Quantity: 1, UnitPriceExclTax: 15000, TaxRate: 20},
				{Name: "Stock initial produits", Quantity: 1, UnitPriceExclTax: 50000, TaxRate: 20},
				{Name: "Ordinateurs", Quantity: 2, UnitPriceExclTax: 7000, TaxRate: 20},
				{Name: "Caméra photo produits", Quantity: 1, UnitPriceExclTax: 4000, TaxRate: 20},
				{Name: "Mobilier bureau", Quantity: 1, UnitPriceExclTax: 5000, TaxRate: 20},
			},
			FixedCosts: []CostSeed{
				{Name: "Hébergement + domaine", MonthlyAmount: 500},
				{Name: "Internet haut débit", MonthlyAmount: 400},
				{Name: "Loyer local", MonthlyAmount: 2500},
				{Name: "Salaire gestionnaire", MonthlyAmount: 5000},
			},
			VariableCosts: []CostSeed{
				{Name: "Commission plateforme paiement", RateOfSales: 3},
				{Name: "Livraison", RateOfSales: 8},
				{Name: "Marketing digital (Ads)", RateOfSales: 10},
			},
			SalesHypothesis: &SalesHypothesis{AvgPrice: 250, MonthlyOrders: 120},
		},
		KeyServices: {
			Key:   KeyServices,
			Label: "Services professionnels",
			Investments: []InvestmentSeed{
				{Name: "Ordinateurs", Quantity: 3, UnitPriceExclTax: 7000, TaxRate: 20},
				{Name: "Mobilier bureau", Quantity: 1, UnitPriceExclTax: 10000, TaxRate: 20},
				{Name: "Logiciels métier", Quantity: 1, UnitPriceExclTax: 8000, TaxRate: 20},
				{Name: "Site web", Quantity: 1, UnitPriceExclTax: 12000, TaxRate: 20},
			},
			FixedCosts: []CostSeed{
				{Name: "Loyer", MonthlyAmount: 4000},
				{Name: "Internet + téléphone", MonthlyAmount: 500},
				{Name: "Électricité", MonthlyAmount: 400},
				{Name: "Salaires", MonthlyAmount: 10000},
			},
			VariableCosts: []CostSeed{
				{Name: "Déplacements", RateOfSales: 5},
				{Name: "Commission commerciale", RateOfSales: 10},
			},
			SalesHypothesis: &SalesHypothesis{AvgPrice: 500, MonthlyOrders: 40},
		},
	},
	lang.Arabic: {
		KeyImprimerie: {
			Key:   KeyImprimerie,
			Label: "ورشة الطباعة والتواصل",
			Investments: []InvestmentSeed{
				{Name: "آلة طباعة", Quantity: 1, UnitPriceExclTax: 25000, TaxRate: 20},
				{Name: "آلة تقطيع ليزر", Quantity: 1, UnitPriceExclTax: 40000, TaxRate: 20},
				{Name: "حاسوب تصميم", Quantity: 2, UnitPriceExclTax: 6000, TaxRate: 20},
				{Name: "مكاتب وكراسي", Quantity: 1, UnitPriceExclTax: 8000, TaxRate: 20},
				{Name: "برامج (Adobe Suite)", Quantity: 1, UnitPriceExclTax: 5000, TaxRate: 20},
			},
			FixedCosts: []CostSeed{
				{Name: "الكراء", MonthlyAmount: 3500},
				{Name: "الإنترنت والهاتف", MonthlyAmount: 400},
				{Name: "الكهرباء", MonthlyAmount: 800},
				{Name: "أجرة موظف", MonthlyAmount: 4000},
			},
			VariableCosts: []CostSeed{
				{Name: "مواد مستهلكة (ورق/حبر)", RateOfSales: 25},
				{Name: "تغليف وتوصيل", RateOfSales: 5},
			},
			SalesHypothesis: &SalesHypothesis{AvgPrice: 150, MonthlyOrders: 150},
		},
		KeyCafeRestaurant: {
			Key:   KeyCafeRestaurant,
			Label: "مقهى / مطعم",
			Investments: []InvestmentSeed{
				{Name: "معدات المطبخ", Quantity: 1, UnitPriceExclTax: 45000, TaxRate: 20},
				{Name: "أثاث (طاولات، كراسي)", Quantity: 1, UnitPriceExclTax: 30000, TaxRate: 20},
				{Name: "صندوق تسجيل + TPE", Quantity: 1, UnitPriceExclTax: 8000, TaxRate: 20},
				{Name: "ثلاجة/فريزر", Quantity: 2, UnitPriceExclTax: 6000, TaxRate: 20},
				{Name: "الديكور والتجهيز", Quantity: 1, UnitPriceExclTax: 15000, TaxRate: 20},
			},
			FixedCosts: []CostSeed{
				{Name: "الكراء", MonthlyAmount: 8000},
				{Name: "الأجور (2 موظفين)", MonthlyAmount: 8000},
				{Name: "الكهرباء والماء", MonthlyAmount: 1500},
				{Name: "الإنترنت والهاتف", MonthlyAmount: 300},
			},
			VariableCosts: []CostSeed{
				{Name: "المواد الأولية (أطعمة)", RateOfSales: 30},
				{Name: "التغليف", RateOfSales: 3},
			},
			SalesHypothesis: &SalesHypothesis{AvgPrice: 80, MonthlyOrders: 600},
		},
		KeyEcommerce: {
			Key:   KeyEcommerce,
			Label: "التجارة الإلكترونية / متجر عبر الإنترنت",
			Investments: []InvestmentSeed{
				{Name: "موقع التجارة الإلكترونية", Quantity: 1, UnitPriceExclTax: 15000, TaxRate: 20},
				{Name: "المخزون الأولي للمنتجات", Quantity: 1, UnitPriceExclTax: 50000, TaxRate: 20},
				{Name: "حواسيب", Quantity: 2, UnitPriceExclTax: 7000, TaxRate: 20},
				{Name: "كاميرا تصوير المنتجات", Quantity: 1, UnitPriceExclTax: 4000, TaxRate: 20},
				{Name: "أثاث المكتب", Quantity: 1, UnitPriceExclTax: 5000, TaxRate: 20},
			},
			FixedCosts: []CostSeed{
				{Name: "الاستضافة + النطاق", MonthlyAmount: 500},
				{Name: "إنترنت عالي السرعة", MonthlyAmount: 400},
				{Name: "كراء المحل", MonthlyAmount: 2500},
				{Name: "أجرة المدير", MonthlyAmount: 5000},
			},
			VariableCosts: []CostSeed{
				{Name: "عمولة منصة الدفع", RateOfSales: 3},
				{Name: "التوصيل", RateOfSales: 8},
				{Name: "التسويق الرقمي (إعلانات)", RateOfSales: 10},
			},
			SalesHypothesis: &SalesHypothesis{AvgPrice: 250, MonthlyOrders: 120},
		},
		KeyServices: {
			Key:   KeyServices,
			Label: "الخدمات المهنية",
			Investments: []InvestmentSeed{
				{Name: "حواسيب", Quantity: 3, UnitPriceExclTax: 7000, TaxRate: 20},
				{Name: "أثاث المكتب", Quantity: 1, UnitPriceExclTax: 10000, TaxRate: 20},
				{Name: "برامج مهنية", Quantity: 1, UnitPriceExclTax: 8000, TaxRate: 20},
				{Name: "موقع ويب", Quantity: 1, UnitPriceExclTax: 12000, TaxRate: 20},
			},
			FixedCosts: []CostSeed{
				{Name: "الكراء", MonthlyAmount: 4000},
				{Name: "الإنترنت والهاتف", MonthlyAmount: 500},
				{Name: "الكهرباء", MonthlyAmount: 400},
				{Name: "الأجور", MonthlyAmount: 10000},
			},
			VariableCosts: []CostSeed{
				{Name: "التنقلات", RateOfSales: 5},
				{Name: "عمولة تجارية", RateOfSales: 10},
			},
			SalesHypothesis: &SalesHypothesis{AvgPrice: 500, MonthlyOrders: 40},
		},
	},
}
