package engine

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// CorrelatedUniforms draws n triples of uniform variables in (0, 1) for the
// food, transport, and lifestyle spending propensities using a Gaussian
// copula: a zero-mean multivariate normal draw pushed through the standard
// normal CDF, which preserves the rank correlation while making each
// marginal uniform.
//
// The correlation matrix has unit diagonal and off-diagonals
// {0.6r, 0.4r, 0.5r} for the (food, transport), (food, lifestyle), and
// (transport, lifestyle) pairs: lifestyle leakage pulls food and transport
// along unevenly.
//
// The function is pure given src. A nil src draws from the global source.
func CorrelatedUniforms(n int, r float64, src rand.Source) (food, transport, lifestyle []float64, err error) {
	if n < 1 {
		return nil, nil, nil, invalidf("trials must be at least 1, got %d", n)
	}
	if r < 0 || r > MaxCorrelation {
		return nil, nil, nil, invalidf("correlation must be in [0, %.2f], got %g", MaxCorrelation, r)
	}

	sigma := mat.NewSymDense(3, []float64{
		1.0, 0.6 * r, 0.4 * r,
		0.6 * r, 1.0, 0.5 * r,
		0.4 * r, 0.5 * r, 1.0,
	})

	mv, ok := distmv.NewNormal(make([]float64, 3), sigma, src)
	if !ok {
		// Unreachable for r in the valid range, but surfaced as a parameter
		// error rather than letting the sampler panic downstream.
		return nil, nil, nil, invalidf("correlation %g yields a non-positive-definite matrix", r)
	}

	food = make([]float64, n)
	transport = make([]float64, n)
	lifestyle = make([]float64, n)

	x := make([]float64, 3)
	for i := 0; i < n; i++ {
		mv.Rand(x)
		food[i] = distuv.UnitNormal.CDF(x[0])
		transport[i] = distuv.UnitNormal.CDF(x[1])
		lifestyle[i] = distuv.UnitNormal.CDF(x[2])
	}
	return food, transport, lifestyle, nil
}
