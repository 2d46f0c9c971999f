package forecast

import "math"

func mean(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	var sum float64
	for _, v := range series {
		sum += v
	}
	return sum / float64(len(series))
}

// sampleVariance uses the n-1 divisor.
func sampleVariance(series []float64) float64 {
	n := len(series)
	if n < 2 {
		return 0
	}
	m := mean(series)
	var sum float64
	for _, v := range series {
		d := v - m
		sum += d * d
	}
	return sum / float64(n-1)
}

func stdDev(series []float64) float64 {
	return math.Sqrt(sampleVariance(series))
}

// linearTrend fits demand against the time index 0..n-1 by ordinary least
// squares. With fewer than two points the slope is zero and the intercept
// is the single value, if any.
func linearTrend(series []float64) (slope, intercept float64) {
	n := float64(len(series))
	if len(series) < 2 {
		if len(series) == 1 {
			return 0, series[0]
		}
		return 0, 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range series {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

// seasonalIndices decomposes a series against a centered moving average.
// Each index is the ratio of the raw value to the smoothed baseline; edge
// points where no full window fits fall back to the raw value, and a zero
// baseline yields an index of 1. A series shorter than the period gets all
// ones, since no decomposition is possible.
func seasonalIndices(series []float64, period int) []float64 {
	indices := make([]float64, len(series))
	if len(series) < period {
		for i := range indices {
			indices[i] = 1
		}
		return indices
	}

	half := period / 2
	for i, raw := range series {
		avg := raw
		if lo := i - half; lo >= 0 && lo+period <= len(series) {
			avg = mean(series[lo : lo+period])
		}
		if avg == 0 {
			indices[i] = 1
		} else {
			indices[i] = raw / avg
		}
	}
	return indices
}
