package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/mizan-app/mizan/internal/domain/swot"
	"github.com/mizan-app/mizan/internal/infrastructure/persistence/models"
)

// SwotAnalysisMapper provides methods for converting between domain and model.
// The four lists are stored as JSON columns, so ToDomain can fail on a
// corrupted row.
type SwotAnalysisMapper interface {
	ToDomain(model *models.SwotAnalysisModel) (*swot.Analysis, error)
	ToModel(domain *swot.Analysis) *models.SwotAnalysisModel
}

// SwotAnalysisMapperImpl implements SwotAnalysisMapper
type SwotAnalysisMapperImpl struct{}

// NewSwotAnalysisMapper creates a new SwotAnalysisMapper
func NewSwotAnalysisMapper() SwotAnalysisMapper {
	return &SwotAnalysisMapperImpl{}
}

// ToDomain converts a SwotAnalysisModel to an Analysis domain entity
func (m *SwotAnalysisMapperImpl) ToDomain(model *models.SwotAnalysisModel) (*swot.Analysis, error) {
	if model == nil {
		return nil, nil
	}

	strengths, err := swotDecodeList(model.Strengths)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal swot strengths (id=%d): %w", model.ID, err)
	}
	weaknesses, err := swotDecodeList(model.Weaknesses)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal swot weaknesses (id=%d): %w", model.ID, err)
	}
	opportunities, err := swotDecodeList(model.Opportunities)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal swot opportunities (id=%d): %w", model.ID, err)
	}
	threats, err := swotDecodeList(model.Threats)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal swot threats (id=%d): %w", model.ID, err)
	}

	return swot.ReconstructAnalysis(
		model.ID,
		model.SID,
		model.BusinessPlanID,
		strengths,
		weaknesses,
		opportunities,
		threats,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

// ToModel converts an Analysis domain entity to a SwotAnalysisModel
func (m *SwotAnalysisMapperImpl) ToModel(domain *swot.Analysis) *models.SwotAnalysisModel {
	if domain == nil {
		return nil
	}

	return &models.SwotAnalysisModel{
		ID:             domain.ID(),
		SID:            domain.SID(),
		BusinessPlanID: domain.PlanID(),
		Strengths:      swotEncodeList(domain.Strengths()),
		Weaknesses:     swotEncodeList(domain.Weaknesses()),
		Opportunities:  swotEncodeList(domain.Opportunities()),
		Threats:        swotEncodeList(domain.Threats()),
		CreatedAt:      domain.CreatedAt(),
		UpdatedAt:      domain.UpdatedAt(),
	}
}

func swotDecodeList(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func swotEncodeList(list []string) string {
	if list == nil {
		list = []string{}
	}
	encoded, _ := json.Marshal(list)
	return string(encoded)
}
