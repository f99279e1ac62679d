package engine

import (
	"math"
	"testing"

	"github.com/theirongolddev/mburn/internal/model"
)

func TestPercentileLinearInterpolation(t *testing.T) {
	sorted := []float64{10, 20, 30, 40, 50}

	cases := []struct {
		q    float64
		want float64
	}{
		{0, 10},
		{0.25, 20},
		{0.5, 30},
		{0.75, 40},
		{1, 50},
		{0.1, 14}, // rank 0.4 between 10 and 20
		{0.95, 48},
	}
	for _, c := range cases {
		got := percentile(sorted, c.q)
		if math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("percentile(%.2f) = %g, want %g", c.q, got, c.want)
		}
	}

	if got := percentile([]float64{7}, 0.95); got != 7 {
		t.Fatalf("single-element percentile = %g, want 7", got)
	}
}

func TestSummarizeCountsExceedances(t *testing.T) {
	b := &model.TrialBatch{
		Totals:   []float64{100, 200, 300, 400},
		HadShock: []bool{false, true, false, false},
	}

	s := Summarize(b, 250)
	if s.ExceedProb != 0.5 {
		t.Fatalf("exceedance = %g, want 0.5", s.ExceedProb)
	}
	if s.ShockTrials != 1 {
		t.Fatalf("shock trials = %d, want 1", s.ShockTrials)
	}
	if s.Mean != 250 {
		t.Fatalf("mean = %g, want 250", s.Mean)
	}

	// A total equal to the budget is not an exceedance.
	if got := Summarize(b, 400).ExceedProb; got != 0 {
		t.Fatalf("exceedance at budget=max = %g, want 0", got)
	}
}

func TestHistogramBuckets(t *testing.T) {
	b := &model.TrialBatch{
		Totals:   []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 10},
		HadShock: []bool{false, false, false, false, false, false, false, false, true, true},
	}

	bins := Histogram(b, 5)
	if len(bins) != 5 {
		t.Fatalf("bin count = %d, want 5", len(bins))
	}

	total, shocks := 0, 0
	for _, bin := range bins {
		total += bin.Count
		shocks += bin.ShockCount
		if bin.ShockCount > bin.Count {
			t.Fatalf("bin [%g, %g): shock count %d exceeds count %d", bin.Lo, bin.Hi, bin.ShockCount, bin.Count)
		}
	}
	if total != b.Len() {
		t.Fatalf("binned %d trials, want %d", total, b.Len())
	}
	if shocks != 2 {
		t.Fatalf("binned %d shock trials, want 2", shocks)
	}

	// The max value lands in the last bin, not one past it.
	if bins[4].Count == 0 {
		t.Fatal("last bin empty, max total fell out of range")
	}
}

func TestSweepBudgetsMonotone(t *testing.T) {
	b := &model.TrialBatch{
		Totals:   []float64{100, 150, 200, 250, 300, 350, 400, 450},
		HadShock: make([]bool, 8),
	}

	points := SweepBudgets(b, 50, 500, 10)
	if len(points) != 10 {
		t.Fatalf("point count = %d, want 10", len(points))
	}
	if points[0].Budget != 50 || points[9].Budget != 500 {
		t.Fatalf("budget endpoints = %g, %g, want 50, 500", points[0].Budget, points[9].Budget)
	}
	for i := 1; i < len(points); i++ {
		if points[i].ExceedProb > points[i-1].ExceedProb {
			t.Fatalf("exceedance rose between points %d and %d", i-1, i)
		}
	}
	if points[0].ExceedProb != 1 {
		t.Fatalf("exceedance below all totals = %g, want 1", points[0].ExceedProb)
	}
	if points[9].ExceedProb != 0 {
		t.Fatalf("exceedance above all totals = %g, want 0", points[9].ExceedProb)
	}
}
