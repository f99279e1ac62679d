package model

// RiskSummary holds the headline statistics derived from a TrialBatch
// against a specific budget. It is recomputed fresh on every run and never
// cached.
type RiskSummary struct {
	Budget float64

	// ExceedProb is the fraction of trials where total spend exceeded the
	// budget, in [0, 1].
	ExceedProb float64

	// SafeBudget95 is the spend level that covers 95% of simulated months
	// (linearly interpolated 95th percentile of the totals).
	SafeBudget95 float64

	// Gap is Budget - SafeBudget95. Negative means underfunded at the 95%
	// confidence level.
	Gap float64

	Mean   float64
	Median float64
	P5     float64

	// ShockTrials is the number of trials that included a shock event.
	ShockTrials int
}

// Verdict is the user-facing reading of a RiskSummary, kept as plain data
// so the CLI and TUI renderers stay trivially testable.
type Verdict struct {
	// Underfunded is true when the budget falls short of SafeBudget95.
	Underfunded bool

	// Coverage is min(budget/SafeBudget95, 1): how much of the safe level
	// the budget actually covers.
	Coverage float64

	// Shortfall is the absolute size of the gap (always >= 0).
	Shortfall float64
}

// ComputeVerdict derives the verdict from a summary.
func ComputeVerdict(s RiskSummary) Verdict {
	v := Verdict{Coverage: 1}
	if s.Gap < 0 {
		v.Underfunded = true
		v.Shortfall = -s.Gap
		if s.SafeBudget95 > 0 {
			v.Coverage = s.Budget / s.SafeBudget95
			if v.Coverage < 0 {
				v.Coverage = 0
			}
		}
	}
	return v
}
