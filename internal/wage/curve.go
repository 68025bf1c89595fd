// Package wage models the freelance hourly wage as a function of elapsed
// work-years. The curve is a closed set of tagged phases so the boundaries
// stay testable in isolation.
package wage

import "math"

// GrowthType discriminates the shape of the ramp phase. Only the quadratic
// ease-in is defined; anything else is a configuration error caught during
// parameter validation.
type GrowthType string

const GrowthQuadratic GrowthType = "quadratic"

// KnownGrowthType reports whether s names a supported growth curve.
func KnownGrowthType(s string) bool {
	return GrowthType(s) == GrowthQuadratic
}

// Phase tags which formula governs a given point on the curve.
type Phase int

const (
	// PhaseRamp covers 0 <= workYears <= TargetReachYears, boundary inclusive.
	PhaseRamp Phase = iota
	// PhasePostTarget covers workYears > TargetReachYears.
	PhasePostTarget
)

// Curve is the piecewise hourly wage function. Fields come straight from the
// freelance parameters and are not validated here.
type Curve struct {
	Initial             float64
	Target              float64
	TargetReachYears    float64
	PostTargetRaiseRate float64
	Growth              GrowthType
}

// PhaseAt returns the phase governing the given offset. The boundary belongs
// to the ramp; both formulas agree there, so the choice is observable only in
// tests.
func (c Curve) PhaseAt(workYears float64) Phase {
	if workYears > c.TargetReachYears {
		return PhasePostTarget
	}
	return PhaseRamp
}

// At returns the hourly wage after workYears of paid freelance work.
// workYears may be fractional.
func (c Curve) At(workYears float64) float64 {
	switch c.PhaseAt(workYears) {
	case PhasePostTarget:
		yearsAfter := workYears - c.TargetReachYears
		return c.Target * math.Pow(1+c.PostTargetRaiseRate, yearsAfter)
	default:
		// Quadratic ease-in from Initial to Target. A zero-length ramp means
		// an immediate jump to the target wage; the explicit branch keeps the
		// division out of reach.
		ratio := 1.0
		if c.TargetReachYears > 0 {
			r := workYears / c.TargetReachYears
			ratio = r * r
		}
		return c.Initial + (c.Target-c.Initial)*ratio
	}
}
