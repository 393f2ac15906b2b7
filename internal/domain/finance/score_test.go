package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionFlags_CompletionRate(t *testing.T) {
	assert.Zero(t, SectionFlags{}.CompletionRate())

	all := SectionFlags{
		ProjectNamed:            true,
		TargetCustomerDescribed: true,
		CompetitorsRecorded:     true,
		SwotRecorded:            true,
		InvestmentsRecorded:     true,
		SalesHypothesisSet:      true,
		SalesStrategyDescribed:  true,
	}
	assert.InDelta(t, 100, all.CompletionRate(), 1e-9)

	three := SectionFlags{
		ProjectNamed:        true,
		SwotRecorded:        true,
		InvestmentsRecorded: true,
	}
	assert.InDelta(t, 100.0*3/7, three.CompletionRate(), 1e-9)
	assert.InDelta(t, 42.9, three.CompletionRate(), 0.05)
}

func TestComputeAdvice(t *testing.T) {
	tests := []struct {
		name        string
		margin      float64
		competitors int
		completion  float64
		profitable  bool
		want        Advice
	}{
		{
			name:   "fresh plan", margin: 0, competitors: 0, completion: 0, profitable: false,
			want: Advice{MarginLow: true, CompetitorsInsufficient: true, PlanIncomplete: true},
		},
		{
			name:   "healthy complete plan", margin: 31.3, competitors: 3, completion: 100, profitable: true,
			want: Advice{PlanHealthy: true},
		},
		{
			name:   "profitable but unfinished", margin: 25, competitors: 2, completion: 85.7, profitable: true,
			want: Advice{PlanIncomplete: true},
		},
		{
			name:   "complete but thin margin", margin: 12, competitors: 5, completion: 100, profitable: true,
			want: Advice{MarginLow: true, PlanHealthy: true},
		},
		{
			name:   "margin exactly at threshold is not low", margin: 20, competitors: 2, completion: 100, profitable: true,
			want: Advice{PlanHealthy: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAdvice(tt.margin, tt.competitors, tt.completion, tt.profitable)
			assert.Equal(t, tt.want, got)
		})
	}
}
