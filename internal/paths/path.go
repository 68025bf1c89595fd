package paths

import "income-engine/internal/model"

// Projector defines the contract for all career path implementations.
// Project assumes parameters that already passed validation.
type Projector interface {
	// Project returns the annual net income for each of n consecutive years
	// starting at age_start. The result is always length n and non-negative.
	Project(params *model.Parameters, n int) []float64

	// HoursPerYear returns the yearly time spent on work and work-adjacent
	// activity (commute, preparation) for the effective hourly wage view.
	HoursPerYear(params *model.Parameters) float64
}
