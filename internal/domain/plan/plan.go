// Package plan holds the BusinessPlan aggregate: the single record a
// session works on, owning every other section through its ID.
package plan

import (
	"fmt"
	"time"

	"github.com/mizan-app/mizan/internal/shared/id"
	"github.com/mizan-app/mizan/internal/shared/lang"
)

type BusinessPlan struct {
	id          uint
	sid         string
	ownerUserID string
	projectName string
	sector      string
	cityRegion  string
	language    string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBusinessPlan creates a blank plan for an anonymous owner. All
// descriptive fields start empty and are filled in by the user.
func NewBusinessPlan(ownerUserID, language string) (*BusinessPlan, error) {
	if ownerUserID == "" {
		return nil, fmt.Errorf("owner user ID is required")
	}
	if !lang.IsSupported(language) {
		return nil, fmt.Errorf("unsupported language %q", language)
	}

	now := time.Now()
	return &BusinessPlan{
		sid:         id.MustGenerateWithPrefix(id.PrefixBusinessPlan, id.DefaultLength),
		ownerUserID: ownerUserID,
		language:    language,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBusinessPlan(planID uint, sid, ownerUserID, projectName, sector, cityRegion, language string, createdAt, updatedAt time.Time) *BusinessPlan {
	return &BusinessPlan{
		id:          planID,
		sid:         sid,
		ownerUserID: ownerUserID,
		projectName: projectName,
		sector:      sector,
		cityRegion:  cityRegion,
		language:    language,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *BusinessPlan) ID() uint            { return p.id }
func (p *BusinessPlan) SID() string         { return p.sid }
func (p *BusinessPlan) OwnerUserID() string { return p.ownerUserID }
func (p *BusinessPlan) ProjectName() string { return p.projectName }
func (p *BusinessPlan) Sector() string      { return p.sector }
func (p *BusinessPlan) CityRegion() string  { return p.cityRegion }
func (p *BusinessPlan) Language() string    { return p.language }
func (p *BusinessPlan) CreatedAt() time.Time { return p.createdAt }
func (p *BusinessPlan) UpdatedAt() time.Time { return p.updatedAt }

func (p *BusinessPlan) SetID(planID uint) { p.id = planID }

// UpdateIdentity sets the descriptive fields of the plan. Sector is a
// free-text label; it may or may not match a sector template key.
func (p *BusinessPlan) UpdateIdentity(projectName, sector, cityRegion string) {
	p.projectName = projectName
	p.sector = sector
	p.cityRegion = cityRegion
	p.touch()
}

func (p *BusinessPlan) SetLanguage(language string) error {
	if !lang.IsSupported(language) {
		return fmt.Errorf("unsupported language %q", language)
	}
	p.language = language
	p.touch()
	return nil
}

// IsOwnedBy reports whether the plan belongs to the given anonymous user.
func (p *BusinessPlan) IsOwnedBy(userID string) bool {
	return p.ownerUserID != "" && p.ownerUserID == userID
}

func (p *BusinessPlan) touch() {
	p.updatedAt = time.Now()
}
