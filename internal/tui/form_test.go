package tui

import (
	"testing"

	"github.com/theirongolddev/mburn/internal/model"
)

func TestFormValuesRoundTrip(t *testing.T) {
	p := model.DefaultParams()
	p.Budget = 3_150_000
	p.Correlation = 0.55

	vals := newFormValues(p)
	got, err := vals.params(99)
	if err != nil {
		t.Fatalf("params: %v", err)
	}

	p.Seed = 99
	if got != p {
		t.Fatalf("round trip changed params:\n got %+v\nwant %+v", got, p)
	}
}

func TestParseAmountGrouping(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"2500000", 2500000},
		{"2,500,000", 2500000},
		{"2_500_000", 2500000},
		{"0.95", 0.95},
		{" 12.5 ", 12.5},
	}
	for _, c := range cases {
		got, err := parseAmount(c.in)
		if err != nil {
			t.Fatalf("parseAmount(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("parseAmount(%q) = %g, want %g", c.in, got, c.want)
		}
	}

	if _, err := parseAmount("abc"); err == nil {
		t.Fatal("parseAmount accepted letters")
	}
	if _, err := parseAmount(""); err == nil {
		t.Fatal("parseAmount accepted empty input")
	}
}

func TestValidators(t *testing.T) {
	if err := validAmount("1,200"); err != nil {
		t.Fatalf("validAmount rejected grouped number: %v", err)
	}
	if err := validAmount("x"); err == nil {
		t.Fatal("validAmount accepted non-numeric input")
	}
	if err := validCount("10000"); err != nil {
		t.Fatalf("validCount rejected 10000: %v", err)
	}
	if err := validCount("0"); err == nil {
		t.Fatal("validCount accepted 0")
	}
	if err := validCount("2.5"); err == nil {
		t.Fatal("validCount accepted a fraction")
	}
}
