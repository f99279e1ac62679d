package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/mburn/internal/model"
)

// formValues holds the raw text typed into the parameter form. Parsing to
// model.Params happens once on submit; per-field validators keep anything
// unparseable out.
type formValues struct {
	budget string

	foodMin  string
	foodMode string
	foodMax  string

	trials      string
	correlation string

	lifestyleMu    string
	lifestyleSigma string

	shockProb string
	shockCost string

	housingMean   string
	housingStddev string

	transportLo    string
	transportWidth string
}

func newFormValues(p model.Params) formValues {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return formValues{
		budget:         f(p.Budget),
		foodMin:        f(p.FoodMin),
		foodMode:       f(p.FoodMode),
		foodMax:        f(p.FoodMax),
		trials:         strconv.Itoa(p.Trials),
		correlation:    f(p.Correlation),
		lifestyleMu:    f(p.LifestyleMu),
		lifestyleSigma: f(p.LifestyleSigma),
		shockProb:      f(p.ShockProb),
		shockCost:      f(p.ShockCost),
		housingMean:    f(p.HousingMean),
		housingStddev:  f(p.HousingStddev),
		transportLo:    f(p.TransportLo),
		transportWidth: f(p.TransportWidth),
	}
}

// parseAmount accepts plain numbers with optional comma or underscore
// grouping: "2500000", "2,500,000", "2_500_000".
func parseAmount(s string) (float64, error) {
	cleaned := strings.NewReplacer(",", "", "_", "", " ", "").Replace(s)
	if cleaned == "" {
		return 0, fmt.Errorf("empty value")
	}
	return strconv.ParseFloat(cleaned, 64)
}

func validAmount(s string) error {
	_, err := parseAmount(s)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

func validCount(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return fmt.Errorf("enter a whole number of at least 1")
	}
	return nil
}

// params assembles a parameter set from the form text. Field validators ran
// before submit, so parse errors here mean a bug, not user input.
func (v formValues) params(seed uint64) (model.Params, error) {
	var p model.Params
	var firstErr error

	amount := func(s string) float64 {
		f, err := parseAmount(s)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return f
	}

	trials, err := strconv.Atoi(strings.TrimSpace(v.trials))
	if err != nil {
		return p, fmt.Errorf("trials: %w", err)
	}

	p = model.Params{
		Trials:         trials,
		Correlation:    amount(v.correlation),
		FoodMin:        amount(v.foodMin),
		FoodMode:       amount(v.foodMode),
		FoodMax:        amount(v.foodMax),
		TransportLo:    amount(v.transportLo),
		TransportWidth: amount(v.transportWidth),
		LifestyleMu:    amount(v.lifestyleMu),
		LifestyleSigma: amount(v.lifestyleSigma),
		ShockProb:      amount(v.shockProb),
		ShockCost:      amount(v.shockCost),
		HousingMean:    amount(v.housingMean),
		HousingStddev:  amount(v.housingStddev),
		Budget:         amount(v.budget),
		Seed:           seed,
	}
	return p, firstErr
}

// newParamForm builds the huh form for entering a scenario, mirroring the
// basic/advanced split of the inputs: money and food up front, the rest
// behind the second group.
func newParamForm(v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Money on hand").
				Description("Your budget for the month.").
				Value(&v.budget).
				Validate(validAmount),
			huh.NewInput().
				Title("Food: cheapest month").
				Value(&v.foodMin).
				Validate(validAmount),
			huh.NewInput().
				Title("Food: usual month").
				Value(&v.foodMode).
				Validate(validAmount),
			huh.NewInput().
				Title("Food: most expensive month").
				Value(&v.foodMax).
				Validate(validAmount),
		).Title("Your finances"),

		huh.NewGroup(
			huh.NewInput().
				Title("Simulated months").
				Description("1,000-20,000. More months, steadier numbers.").
				Value(&v.trials).
				Validate(validCount),
			huh.NewInput().
				Title("Lifestyle contagion (0-0.95)").
				Description("How much overspending in one area pulls the others along.").
				Value(&v.correlation).
				Validate(validAmount),
			huh.NewInput().
				Title("Lifestyle level (11-14)").
				Value(&v.lifestyleMu).
				Validate(validAmount),
			huh.NewInput().
				Title("Lifestyle variation").
				Value(&v.lifestyleSigma).
				Validate(validAmount),
			huh.NewInput().
				Title("Shock probability (0-1)").
				Description("Chance of an emergency in a month.").
				Value(&v.shockProb).
				Validate(validAmount),
			huh.NewInput().
				Title("Shock cost").
				Value(&v.shockCost).
				Validate(validAmount),
		).Title("Risk settings"),

		huh.NewGroup(
			huh.NewInput().
				Title("Housing: typical month").
				Value(&v.housingMean).
				Validate(validAmount),
			huh.NewInput().
				Title("Housing: swing").
				Value(&v.housingStddev).
				Validate(validAmount),
			huh.NewInput().
				Title("Transport: minimum").
				Value(&v.transportLo).
				Validate(validAmount),
			huh.NewInput().
				Title("Transport: spread").
				Value(&v.transportWidth).
				Validate(validAmount),
		).Title("Fixed costs"),
	)
}
