package engine

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/theirongolddev/mburn/internal/model"
)

// composeCosts maps the correlated uniforms through each category's quantile
// function, adds the independent housing draw and the shock event, and sums
// the five components per trial.
//
// Inversion sampling keeps the distributional shape intact: the uniforms
// carry the correlation structure, the quantile functions impose triangular
// (food), uniform (transport), and log-normal (lifestyle) marginals on it.
// Housing and the shock draw are independent of the copula; shocks model
// exogenous events, not lifestyle-driven overspending.
func composeCosts(p model.Params, uFood, uTransport, uLifestyle []float64, rng *rand.Rand) *model.TrialBatch {
	n := p.Trials

	housing := distuv.Normal{Mu: p.HousingMean, Sigma: p.HousingStddev, Src: rng}
	food := distuv.NewTriangle(p.FoodMin, p.FoodMax, p.FoodMode, nil)
	transport := distuv.Uniform{Min: p.TransportLo, Max: p.TransportLo + p.TransportWidth}
	lifestyle := distuv.LogNormal{Mu: p.LifestyleMu, Sigma: p.LifestyleSigma}

	b := &model.TrialBatch{
		Housing:   make([]float64, n),
		Food:      make([]float64, n),
		Transport: make([]float64, n),
		Lifestyle: make([]float64, n),
		Shock:     make([]float64, n),
		Totals:    make([]float64, n),
		HadShock:  make([]bool, n),
	}

	for i := 0; i < n; i++ {
		b.Housing[i] = housing.Rand()
		b.Food[i] = food.Quantile(uFood[i])
		b.Transport[i] = transport.Quantile(uTransport[i])
		b.Lifestyle[i] = lifestyle.Quantile(uLifestyle[i])
		if rng.Float64() < p.ShockProb {
			b.Shock[i] = p.ShockCost
			b.HadShock[i] = true
		}
		b.Totals[i] = b.Housing[i] + b.Food[i] + b.Transport[i] + b.Lifestyle[i] + b.Shock[i]
	}
	return b
}
