package core

import "math"

// -----------------------------------------------------------------------------

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// -----------------------------------------------------------------------------

// SMASeries computes the trailing simple moving average over the given
// window. Rows before the window fills are NaN (undefined).
func SMASeries(values []float64, window int) []float64 {
	result := make([]float64, len(values))
	if window <= 0 {
		window = 1
	}

	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i < window-1 {
			result[i] = math.NaN()
		} else {
			result[i] = sum / float64(window)
		}
	}
	return result
}

// -----------------------------------------------------------------------------

// EMASeries computes the exponential moving average with smoothing
// 2/(window+1), seeded with the simple mean of the first window. Rows
// before the seed are NaN (undefined).
func EMASeries(values []float64, window int) []float64 {
	result := make([]float64, len(values))
	if window <= 0 {
		window = 1
	}

	k := 2.0 / (float64(window) + 1.0)
	for i := range values {
		if i < window-1 {
			result[i] = math.NaN()
		} else if i == window-1 {
			result[i] = Mean(values[:window])
		} else {
			result[i] = values[i]*k + result[i-1]*(1.0-k)
		}
	}
	return result
}
