// Package model defines the plain data types shared by the simulation
// engine, the terminal renderers, and the scenario store.
package model

// Params is the immutable input bundle for one simulation run.
//
// All money values are in whole currency units (the defaults are Indonesian
// Rupiah). Distribution parameters describe one month of spending:
//
//   - Housing is drawn from Normal(HousingMean, HousingStddev). Negative
//     draws are mathematically possible and deliberately not clamped; with
//     realistic parameters the probability is negligible.
//   - Food follows a triangular distribution on [FoodMin, FoodMax] with
//     mode FoodMode.
//   - Transport is uniform on [TransportLo, TransportLo+TransportWidth].
//   - Lifestyle is log-normal with log-space location LifestyleMu and
//     shape LifestyleSigma.
//   - A shock month happens with probability ShockProb and adds ShockCost.
//
// Correlation controls how strongly the food, transport, and lifestyle
// propensities move together (the "contagious lifestyle" effect). Valid
// range is [0, 0.95]; values above are rejected rather than clamped.
//
// Seed selects the random stream. Zero means "pick one from the clock";
// the chosen seed is reported on the resulting batch so a run can be
// replayed exactly.
type Params struct {
	Trials      int
	Correlation float64

	FoodMin  float64
	FoodMode float64
	FoodMax  float64

	TransportLo    float64
	TransportWidth float64

	LifestyleMu    float64
	LifestyleSigma float64

	ShockProb float64
	ShockCost float64

	HousingMean   float64
	HousingStddev float64

	Budget float64
	Seed   uint64
}

// DefaultParams returns a ready-to-run parameter set: a single-person
// monthly budget with moderate lifestyle correlation.
func DefaultParams() Params {
	return Params{
		Trials:         10000,
		Correlation:    0.7,
		FoodMin:        900_000,
		FoodMode:       1_500_000,
		FoodMax:        2_400_000,
		TransportLo:    150_000,
		TransportWidth: 300_000,
		LifestyleMu:    12.5,
		LifestyleSigma: 0.4,
		ShockProb:      0.05,
		ShockCost:      1_500_000,
		HousingMean:    850_000,
		HousingStddev:  50_000,
		Budget:         2_500_000,
	}
}
