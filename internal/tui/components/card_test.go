package components

import "testing"

func TestLayoutRowSumsExactly(t *testing.T) {
	cases := []struct {
		total, n int
	}{
		{100, 3},
		{99, 4},
		{7, 7},
		{10, 3},
	}
	for _, c := range cases {
		widths := LayoutRow(c.total, c.n)
		if len(widths) != c.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", c.total, c.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
			if w < c.total/c.n {
				t.Fatalf("LayoutRow(%d, %d): width %d below base", c.total, c.n, w)
			}
		}
		if sum != c.total {
			t.Fatalf("LayoutRow(%d, %d) sums to %d", c.total, c.n, sum)
		}
	}

	if LayoutRow(100, 0) != nil {
		t.Fatal("LayoutRow with n=0 should return nil")
	}
}

func TestTabIdxByKey(t *testing.T) {
	if idx := TabIdxByKey('d'); idx != 1 {
		t.Fatalf("TabIdxByKey('d') = %d, want 1", idx)
	}
	if idx := TabIdxByKey('z'); idx != -1 {
		t.Fatalf("TabIdxByKey('z') = %d, want -1", idx)
	}
}

func TestHistogramHandlesEmptyInput(t *testing.T) {
	if got := Histogram(HistogramData{}, 10); got != "" {
		t.Fatalf("empty histogram rendered %q", got)
	}
	d := HistogramData{Counts: []int{0, 0}, ShockCounts: []int{0, 0}, BudgetCol: -1, SafeCol: -1}
	if got := Histogram(d, 10); got != "" {
		t.Fatalf("all-zero histogram rendered %q", got)
	}
}
