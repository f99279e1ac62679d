package engine

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/theirongolddev/mburn/internal/model"
)

// Summarize derives the headline risk statistics for a batch against a
// budget. It can be called repeatedly with different budgets on the same
// batch; the batch is not modified.
func Summarize(b *model.TrialBatch, budget float64) model.RiskSummary {
	n := len(b.Totals)
	exceed := 0
	for _, t := range b.Totals {
		if t > budget {
			exceed++
		}
	}

	sorted := append([]float64(nil), b.Totals...)
	sort.Float64s(sorted)

	safe95 := percentile(sorted, 0.95)
	return model.RiskSummary{
		Budget:       budget,
		ExceedProb:   float64(exceed) / float64(n),
		SafeBudget95: safe95,
		Gap:          budget - safe95,
		Mean:         stat.Mean(b.Totals, nil),
		Median:       percentile(sorted, 0.50),
		P5:           percentile(sorted, 0.05),
		ShockTrials:  b.ShockCount(),
	}
}

// percentile returns the linearly interpolated q-quantile (q in [0, 1]) of
// an ascending-sorted slice: rank h = q*(n-1), interpolated between the
// bracketing samples.
func percentile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	h := q * float64(n-1)
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// HistogramBin is one bucket of the total-cost distribution. ShockCount
// says how many of the bin's trials were shock months, letting renderers
// color the shock tail separately.
type HistogramBin struct {
	Lo, Hi     float64
	Count      int
	ShockCount int
}

// Histogram buckets a batch's totals into the given number of equal-width
// bins spanning [min, max] of the observed totals.
func Histogram(b *model.TrialBatch, bins int) []HistogramBin {
	if bins < 1 || b.Len() == 0 {
		return nil
	}

	lo, hi := b.Totals[0], b.Totals[0]
	for _, t := range b.Totals[1:] {
		if t < lo {
			lo = t
		}
		if t > hi {
			hi = t
		}
	}
	if hi == lo {
		hi = lo + 1
	}
	width := (hi - lo) / float64(bins)

	out := make([]HistogramBin, bins)
	for i := range out {
		out[i].Lo = lo + float64(i)*width
		out[i].Hi = lo + float64(i+1)*width
	}
	for i, t := range b.Totals {
		idx := int((t - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
		if b.HadShock[i] {
			out[idx].ShockCount++
		}
	}
	return out
}

// SweepPoint pairs a candidate budget with its exceedance probability on a
// fixed batch.
type SweepPoint struct {
	Budget     float64
	ExceedProb float64
}

// SweepBudgets evaluates the exceedance probability at steps evenly spaced
// budgets across [lo, hi] on one batch. Probabilities are non-increasing in
// the budget, since they all count the same fixed totals.
func SweepBudgets(b *model.TrialBatch, lo, hi float64, steps int) []SweepPoint {
	if steps < 2 || hi <= lo {
		return nil
	}

	sorted := append([]float64(nil), b.Totals...)
	sort.Float64s(sorted)
	n := len(sorted)

	out := make([]SweepPoint, steps)
	for i := range out {
		budget := lo + (hi-lo)*float64(i)/float64(steps-1)
		// Count of totals strictly greater than budget.
		exceed := n - sort.SearchFloat64s(sorted, math.Nextafter(budget, math.Inf(1)))
		out[i] = SweepPoint{
			Budget:     budget,
			ExceedProb: float64(exceed) / float64(n),
		}
	}
	return out
}
