package usecases

import (
	"context"

	"github.com/mizan-app/mizan/internal/application/template/dto"
	"github.com/mizan-app/mizan/internal/domain/template"
	"github.com/mizan-app/mizan/internal/shared/lang"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// ListTemplatesUseCase lists the sector templates available in a
// language.
type ListTemplatesUseCase struct {
	logger logger.Interface
}

// NewListTemplatesUseCase creates a new ListTemplatesUseCase
func NewListTemplatesUseCase(logger logger.Interface) *ListTemplatesUseCase {
	return &ListTemplatesUseCase{
		logger: logger,
	}
}

// Execute lists the templates for the given language. Unknown or
// empty languages fall back to French.
func (uc *ListTemplatesUseCase) Execute(ctx context.Context, language string) ([]*dto.TemplateSummaryResponse, error) {
	normalized := lang.Normalize(language)
	return dto.ToTemplateSummaryResponseList(template.List(normalized)), nil
}
