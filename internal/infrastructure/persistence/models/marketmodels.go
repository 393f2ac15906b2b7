package models

import "time"

// MarketDataModel is the GORM model for the market_data table.
// One row per plan.
type MarketDataModel struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"`
	SID             string    `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	BusinessPlanID  uint      `gorm:"column:business_plan_id;not null;uniqueIndex"`
	TargetCustomer  string    `gorm:"column:target_customer;type:text"`
	MarketSize      string    `gorm:"column:market_size;type:text"`
	ProblemSolution string    `gorm:"column:problem_solution;type:text"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (MarketDataModel) TableName() string {
	return "market_data"
}

// CompetitorModel is the GORM model for the competitors table
type CompetitorModel struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"`
	SID             string    `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	BusinessPlanID  uint      `gorm:"column:business_plan_id;not null;index"`
	Name            string    `gorm:"column:name;type:varchar(200);not null;default:''"`
	Price           float64   `gorm:"column:price;not null;default:0"`
	Advantages      string    `gorm:"column:advantages;type:text"`
	Weaknesses      string    `gorm:"column:weaknesses;type:text"`
	Differentiation string    `gorm:"column:differentiation;type:text"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (CompetitorModel) TableName() string {
	return "competitors"
}

// SwotAnalysisModel is the GORM model for the swot_analysis table.
// The four lists are JSON-encoded string arrays, one row per plan.
type SwotAnalysisModel struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	SID            string    `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	BusinessPlanID uint      `gorm:"column:business_plan_id;not null;uniqueIndex"`
	Strengths      string    `gorm:"column:strengths;type:json"`
	Weaknesses     string    `gorm:"column:weaknesses;type:json"`
	Opportunities  string    `gorm:"column:opportunities;type:json"`
	Threats        string    `gorm:"column:threats;type:json"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (SwotAnalysisModel) TableName() string {
	return "swot_analysis"
}

// MarketingStrategyModel is the GORM model for the marketing_strategies
// table. One row per plan; channels is a JSON-encoded string array.
type MarketingStrategyModel struct {
	ID               uint      `gorm:"primaryKey;autoIncrement"`
	SID              string    `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	BusinessPlanID   uint      `gorm:"column:business_plan_id;not null;uniqueIndex"`
	SalesStrategy    string    `gorm:"column:sales_strategy;type:text"`
	DigitalMarketing string    `gorm:"column:digital_marketing;type:text"`
	Channels         string    `gorm:"column:channels;type:json"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (MarketingStrategyModel) TableName() string {
	return "marketing_strategies"
}
