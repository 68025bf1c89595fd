// Package series provides the deterministic aggregations layered over the
// annual income series.
package series

// Cumulative returns the running prefix sums of annual: result[i] is the sum
// of annual[0..i]. An empty input yields an empty output.
func Cumulative(annual []float64) []float64 {
	out := make([]float64, len(annual))

	var sum float64
	for i, v := range annual {
		sum += v
		out[i] = sum
	}
	return out
}

// Total returns the sum of the whole series; zero for an empty series.
func Total(annual []float64) float64 {
	var sum float64
	for _, v := range annual {
		sum += v
	}
	return sum
}

// EffectiveHourlyWage divides each year's income by the hours worked that
// year. A non-positive hour budget yields zeros rather than a fault.
func EffectiveHourlyWage(annual []float64, hoursPerYear float64) []float64 {
	out := make([]float64, len(annual))
	if hoursPerYear <= 0 {
		return out
	}
	for i, v := range annual {
		out[i] = v / hoursPerYear
	}
	return out
}
