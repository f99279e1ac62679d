package model

// TrialBatch holds every simulated month from one run. All slices have the
// same length (the requested trial count) and are never mutated after the
// engine returns them.
type TrialBatch struct {
	Housing   []float64
	Food      []float64
	Transport []float64
	Lifestyle []float64
	Shock     []float64

	// Totals[i] is the sum of the five components for trial i.
	Totals []float64

	// HadShock[i] reports whether trial i included a shock event.
	HadShock []bool

	// Seed is the seed that produced this batch. Rerunning with the same
	// Params and this seed reproduces the batch bit for bit.
	Seed uint64
}

// Len returns the number of trials in the batch.
func (b *TrialBatch) Len() int { return len(b.Totals) }

// ShockCount returns how many trials included a shock event.
func (b *TrialBatch) ShockCount() int {
	n := 0
	for _, s := range b.HadShock {
		if s {
			n++
		}
	}
	return n
}
