package paths

import (
	"math"

	"income-engine/internal/model"
	"income-engine/internal/wage"
)

// FreelanceProjector models the self-employed path: an unpaid learning
// period, then hourly billing along the wage curve, with expenses and
// deductions taken off the gross.
type FreelanceProjector struct{}

func (f *FreelanceProjector) Project(params *model.Parameters, n int) []float64 {
	income := make([]float64, n)

	curve := wage.Curve{
		Initial:             params.FreelanceInitialHourlyWage,
		Target:              params.FreelanceTargetHourlyWage,
		TargetReachYears:    params.FreelanceTargetReachYears,
		PostTargetRaiseRate: params.FreelancePostTargetRaiseRate,
		Growth:              wage.GrowthType(params.FreelanceHourlyWageGrowthType),
	}

	learningYears := params.FreelanceLearningPeriodMonths / monthsPerYear

	for i := 0; i < n; i++ {
		// Years whose start falls inside the learning period earn nothing.
		if float64(i) < math.Ceil(learningYears) {
			continue
		}

		// workYears stays fractional past the learning boundary; it is not
		// rounded down to whole years.
		workYears := float64(i) - learningYears

		hourly := curve.At(workYears)
		annualGross := hourly * params.FreelanceWorkHoursPerDay * params.FreelanceWorkDaysPerMonth * monthsPerYear
		taxable := annualGross * (1 - params.FreelanceExpenseRate)
		income[i] = taxable * (1 - params.DeductionRateFreelance)
	}

	return income
}

func (f *FreelanceProjector) HoursPerYear(params *model.Parameters) float64 {
	hoursPerDay := params.FreelanceWorkHoursPerDay + params.FreelanceCommuteHoursPerDay
	return hoursPerDay * params.FreelanceWorkDaysPerMonth * monthsPerYear
}
