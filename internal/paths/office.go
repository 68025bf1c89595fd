package paths

import "income-engine/internal/model"

const (
	monthsPerYear = 12
	weeksPerYear  = 52
)

// OfficeProjector models the salaried path: a monthly net salary paid twelve
// months plus a bonus expressed in salary-months, with a geometric raise
// applied between years. The monthly salary is treated as already net; the
// employee deduction rate is intentionally not applied here.
type OfficeProjector struct{}

func (o *OfficeProjector) Project(params *model.Parameters, n int) []float64 {
	income := make([]float64, n)

	monthly := params.OfficeInitialMonthlyNetSalary
	for i := 0; i < n; i++ {
		income[i] = monthly * (monthsPerYear + params.OfficeBonusMonths)
		monthly *= 1 + params.OfficeRaiseRate
		if monthly < 0 {
			// Raise rates below -100% floor the salary at zero.
			monthly = 0
		}
	}

	return income
}

func (o *OfficeProjector) HoursPerYear(params *model.Parameters) float64 {
	hoursPerDay := params.OfficeWorkHoursPerDay +
		params.OfficeCommuteHoursPerDay +
		params.OfficePreparationHoursPerDay
	return hoursPerDay * params.OfficeWorkDaysPerWeek * weeksPerYear
}
