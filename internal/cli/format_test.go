package cli

import "testing"

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{2500000, "2,500,000"},
		{-1234567, "-1,234,567"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.in); got != c.want {
			t.Fatalf("FormatNumber(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{2500000, "Rp 2,500,000"},
		{849999.6, "Rp 850,000"},
		{-150000, "-Rp 150,000"},
		{0, "Rp 0"},
	}
	for _, c := range cases {
		if got := FormatMoney(c.in); got != c.want {
			t.Fatalf("FormatMoney(%g) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatMoneyCompact(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{2500000, "Rp 2.5M"},
		{150000, "Rp 150k"},
		{999, "Rp 999"},
		{1200000000, "Rp 1.2B"},
	}
	for _, c := range cases {
		if got := FormatMoneyCompact(c.in); got != c.want {
			t.Fatalf("FormatMoneyCompact(%g) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.823); got != "82.3%" {
		t.Fatalf("FormatPercent(0.823) = %q, want \"82.3%%\"", got)
	}
	if got := FormatPercent(0); got != "0.0%" {
		t.Fatalf("FormatPercent(0) = %q, want \"0.0%%\"", got)
	}
}

func TestSetCurrency(t *testing.T) {
	t.Cleanup(func() { SetCurrency("Rp") })

	SetCurrency("IDR")
	if got := FormatMoney(1000); got != "IDR 1,000" {
		t.Fatalf("after SetCurrency: FormatMoney = %q, want \"IDR 1,000\"", got)
	}

	// Empty symbol is ignored.
	SetCurrency("")
	if got := FormatMoney(1000); got != "IDR 1,000" {
		t.Fatalf("after empty SetCurrency: FormatMoney = %q, want unchanged", got)
	}
}
