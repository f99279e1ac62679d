// Package engine implements the Monte Carlo risk engine: a correlated
// sampler (Gaussian copula over the food, transport, and lifestyle
// propensities), a cost composer (quantile transforms plus independent
// housing and shock draws), and the summary statistics derived from the
// simulated months.
package engine

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/theirongolddev/mburn/internal/model"
)

// Run executes one full simulation: validate, sample, compose, summarize.
//
// Run is deterministic with respect to Params.Seed: the same parameters and
// a non-zero seed always produce an identical TrialBatch. A zero seed is
// replaced with one derived from the clock; the seed actually used is
// recorded on the batch.
//
// Validation happens before any sampling. On error the returned batch is
// nil and no partial results exist.
func Run(p model.Params) (*model.TrialBatch, model.RiskSummary, error) {
	if err := ValidateParams(p); err != nil {
		return nil, model.RiskSummary{}, err
	}

	seed := p.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	uFood, uTransport, uLifestyle, err := CorrelatedUniforms(p.Trials, p.Correlation, rng)
	if err != nil {
		return nil, model.RiskSummary{}, err
	}

	batch := composeCosts(p, uFood, uTransport, uLifestyle, rng)
	batch.Seed = seed

	return batch, Summarize(batch, p.Budget), nil
}
