package models

import "time"

// BusinessPlanModel is the GORM model for the business_plans table
type BusinessPlanModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	SID         string    `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	OwnerUserID string    `gorm:"column:owner_user_id;type:varchar(64);not null;index"`
	ProjectName string    `gorm:"column:project_name;type:varchar(200);not null;default:''"`
	Sector      string    `gorm:"column:sector;type:varchar(100);not null;default:''"`
	CityRegion  string    `gorm:"column:city_region;type:varchar(200);not null;default:''"`
	Language    string    `gorm:"column:language;type:varchar(8);not null;default:'fr'"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (BusinessPlanModel) TableName() string {
	return "business_plans"
}
