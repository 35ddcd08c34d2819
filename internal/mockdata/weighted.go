package mockdata

import "math/rand"

// Choice pairs a candidate value with its selection weight
type Choice[T any] struct {
	Value  T
	Weight float64
}

// PickWeighted selects a value by mapping a uniform [0,1) draw onto
// cumulative weight thresholds. Weights need not sum to 1. An empty or
// zero-weight list returns the zero value.
func PickWeighted[T any](r *rand.Rand, choices []Choice[T]) T {
	var zero T
	if len(choices) == 0 {
		return zero
	}

	var total float64
	for _, c := range choices {
		if c.Weight > 0 {
			total += c.Weight
		}
	}
	if total <= 0 {
		return zero
	}

	draw := r.Float64() * total
	var cumulative float64
	for _, c := range choices {
		if c.Weight <= 0 {
			continue
		}
		cumulative += c.Weight
		if draw < cumulative {
			return c.Value
		}
	}

	// Floating point edge: draw landed on the upper bound
	return choices[len(choices)-1].Value
}

// PickOne selects a value uniformly
func PickOne[T any](r *rand.Rand, values []T) T {
	var zero T
	if len(values) == 0 {
		return zero
	}
	return values[r.Intn(len(values))]
}
