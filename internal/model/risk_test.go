package model

import (
	"math"
	"testing"
)

func TestComputeVerdictCovered(t *testing.T) {
	v := ComputeVerdict(RiskSummary{Budget: 4_000_000, SafeBudget95: 3_500_000, Gap: 500_000})
	if v.Underfunded {
		t.Fatal("verdict underfunded with a positive gap")
	}
	if v.Coverage != 1 {
		t.Fatalf("coverage = %g, want 1", v.Coverage)
	}
	if v.Shortfall != 0 {
		t.Fatalf("shortfall = %g, want 0", v.Shortfall)
	}
}

func TestComputeVerdictUnderfunded(t *testing.T) {
	v := ComputeVerdict(RiskSummary{Budget: 2_500_000, SafeBudget95: 4_000_000, Gap: -1_500_000})
	if !v.Underfunded {
		t.Fatal("verdict covered with a negative gap")
	}
	if v.Shortfall != 1_500_000 {
		t.Fatalf("shortfall = %g, want 1500000", v.Shortfall)
	}
	if math.Abs(v.Coverage-0.625) > 1e-9 {
		t.Fatalf("coverage = %g, want 0.625", v.Coverage)
	}
}

func TestComputeVerdictNegativeBudget(t *testing.T) {
	v := ComputeVerdict(RiskSummary{Budget: -100, SafeBudget95: 3_000_000, Gap: -3_000_100})
	if !v.Underfunded {
		t.Fatal("verdict covered with a negative budget")
	}
	if v.Coverage != 0 {
		t.Fatalf("coverage = %g, want clamped to 0", v.Coverage)
	}
}
