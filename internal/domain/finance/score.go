package finance

// TrackedSections is the number of plan sections the completion score
// looks at.
const TrackedSections = 7

// LowMarginThreshold is the profit margin, in percent, below which the
// plan gets a low-margin warning.
const LowMarginThreshold = 20.0

// MinCompetitors is the smallest competitor count considered a usable
// market analysis.
const MinCompetitors = 2

// SectionFlags records which tracked sections contain user data.
type SectionFlags struct {
	ProjectNamed            bool
	TargetCustomerDescribed bool
	CompetitorsRecorded     bool
	SwotRecorded            bool
	InvestmentsRecorded     bool
	SalesHypothesisSet      bool
	SalesStrategyDescribed  bool
}

// CompletionRate returns the percentage of tracked sections filled in,
// 0 to 100.
func (f SectionFlags) CompletionRate() float64 {
	count := 0
	for _, set := range [TrackedSections]bool{
		f.ProjectNamed,
		f.TargetCustomerDescribed,
		f.CompetitorsRecorded,
		f.SwotRecorded,
		f.InvestmentsRecorded,
		f.SalesHypothesisSet,
		f.SalesStrategyDescribed,
	} {
		if set {
			count++
		}
	}
	return 100 * float64(count) / TrackedSections
}

// Advice carries the qualitative flags shown on the dashboard. The
// predicates are independent; several can hold at once.
type Advice struct {
	MarginLow               bool
	CompetitorsInsufficient bool
	PlanIncomplete          bool
	PlanHealthy             bool
}

// ComputeAdvice derives the advisory flags from the plan's metrics.
func ComputeAdvice(profitMarginPercent float64, competitorCount int, completionRate float64, profitable bool) Advice {
	return Advice{
		MarginLow:               profitMarginPercent < LowMarginThreshold,
		CompetitorsInsufficient: competitorCount < MinCompetitors,
		PlanIncomplete:          completionRate < 100,
		PlanHealthy:             profitable && completionRate >= 100,
	}
}
