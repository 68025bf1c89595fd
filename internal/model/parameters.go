package model

import (
	"fmt"

	"income-engine/internal/wage"
)

// Parameters holds every exogenous input of a simulation. Field names follow
// the published parameter table; values are supplied by a preset or by the
// caller and are never mutated after validation.
type Parameters struct {
	AgeStart int `json:"age_start" yaml:"age_start"`
	AgeEnd   int `json:"age_end" yaml:"age_end"`

	// Office worker path.
	OfficeInitialMonthlyNetSalary float64 `json:"office_initial_monthly_net_salary" yaml:"office_initial_monthly_net_salary"`
	OfficeBonusMonths             float64 `json:"office_bonus_months" yaml:"office_bonus_months"`
	OfficeRaiseRate               float64 `json:"office_raise_rate" yaml:"office_raise_rate"`
	OfficeWorkHoursPerDay         float64 `json:"office_work_hours_per_day" yaml:"office_work_hours_per_day"`
	OfficeCommuteHoursPerDay      float64 `json:"office_commute_hours_per_day" yaml:"office_commute_hours_per_day"`
	OfficePreparationHoursPerDay  float64 `json:"office_preparation_hours_per_day" yaml:"office_preparation_hours_per_day"`
	OfficeWorkDaysPerWeek         float64 `json:"office_work_days_per_week" yaml:"office_work_days_per_week"`

	// DeductionRateEmployee is accepted for compatibility with the published
	// parameter table but never applied: the office monthly salary is treated
	// as already net.
	DeductionRateEmployee float64 `json:"deduction_rate_employee" yaml:"deduction_rate_employee"`

	// Freelance engineer path.
	FreelanceLearningPeriodMonths float64 `json:"freelance_learning_period_months" yaml:"freelance_learning_period_months"`
	FreelanceInitialHourlyWage    float64 `json:"freelance_initial_hourly_wage" yaml:"freelance_initial_hourly_wage"`
	FreelanceTargetHourlyWage     float64 `json:"freelance_target_hourly_wage" yaml:"freelance_target_hourly_wage"`
	FreelanceTargetReachYears     float64 `json:"freelance_target_reach_years" yaml:"freelance_target_reach_years"`
	FreelanceHourlyWageGrowthType string  `json:"freelance_hourly_wage_growth_type" yaml:"freelance_hourly_wage_growth_type"`
	FreelancePostTargetRaiseRate  float64 `json:"freelance_post_target_raise_rate" yaml:"freelance_post_target_raise_rate"`
	FreelanceWorkHoursPerDay      float64 `json:"freelance_work_hours_per_day" yaml:"freelance_work_hours_per_day"`
	FreelanceWorkDaysPerMonth     float64 `json:"freelance_work_days_per_month" yaml:"freelance_work_days_per_month"`
	FreelanceCommuteHoursPerDay   float64 `json:"freelance_commute_hours_per_day" yaml:"freelance_commute_hours_per_day"`
	FreelanceExpenseRate          float64 `json:"freelance_expense_rate" yaml:"freelance_expense_rate"`
	DeductionRateFreelance        float64 `json:"deduction_rate_freelance" yaml:"deduction_rate_freelance"`
}

// Years returns the simulated age index, age_start..age_end inclusive.
func (p *Parameters) Years() []int {
	years := make([]int, 0, p.AgeEnd-p.AgeStart+1)
	for a := p.AgeStart; a <= p.AgeEnd; a++ {
		years = append(years, a)
	}
	return years
}

// Validate checks every domain constraint and returns one CRITICAL message
// per violation, naming the offending parameter. An empty result means the
// parameters are safe to project. Warnings never block a simulation.
func (p *Parameters) Validate() []CalculationMessage {
	var msgs []CalculationMessage

	critical := func(code, format string, args ...interface{}) {
		msgs = append(msgs, CalculationMessage{
			Level:   LevelCritical,
			Code:    code,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if p.AgeStart > p.AgeEnd {
		critical("INVALID_AGE_RANGE", "age_start (%d) must not exceed age_end (%d)", p.AgeStart, p.AgeEnd)
	}
	if p.OfficeInitialMonthlyNetSalary <= 0 {
		critical("INVALID_INITIAL_SALARY", "office_initial_monthly_net_salary must be positive, got %g", p.OfficeInitialMonthlyNetSalary)
	}
	if p.OfficeBonusMonths < 0 {
		critical("INVALID_BONUS_MONTHS", "office_bonus_months must be non-negative, got %g", p.OfficeBonusMonths)
	}
	if p.FreelanceLearningPeriodMonths < 0 {
		critical("INVALID_LEARNING_PERIOD", "freelance_learning_period_months must be non-negative, got %g", p.FreelanceLearningPeriodMonths)
	}
	if p.FreelanceInitialHourlyWage < 0 {
		critical("INVALID_INITIAL_WAGE", "freelance_initial_hourly_wage must be non-negative, got %g", p.FreelanceInitialHourlyWage)
	}
	if p.FreelanceTargetReachYears < 0 {
		critical("INVALID_TARGET_REACH_YEARS", "freelance_target_reach_years must be non-negative, got %g", p.FreelanceTargetReachYears)
	}
	if !wage.KnownGrowthType(p.FreelanceHourlyWageGrowthType) {
		critical("UNKNOWN_GROWTH_TYPE", "freelance_hourly_wage_growth_type %q is not recognized", p.FreelanceHourlyWageGrowthType)
	}
	if p.FreelanceWorkHoursPerDay <= 0 {
		critical("INVALID_WORK_HOURS", "freelance_work_hours_per_day must be positive, got %g", p.FreelanceWorkHoursPerDay)
	}
	if p.FreelanceWorkDaysPerMonth <= 0 {
		critical("INVALID_WORK_DAYS", "freelance_work_days_per_month must be positive, got %g", p.FreelanceWorkDaysPerMonth)
	}
	if p.FreelanceExpenseRate < 0 || p.FreelanceExpenseRate >= 1 {
		critical("INVALID_EXPENSE_RATE", "freelance_expense_rate must be in [0,1), got %g", p.FreelanceExpenseRate)
	}
	if p.DeductionRateFreelance < 0 || p.DeductionRateFreelance >= 1 {
		critical("INVALID_DEDUCTION_RATE", "deduction_rate_freelance must be in [0,1), got %g", p.DeductionRateFreelance)
	}

	if p.FreelanceTargetHourlyWage < p.FreelanceInitialHourlyWage {
		msgs = append(msgs, CalculationMessage{
			Level:   LevelWarning,
			Code:    "TARGET_BELOW_INITIAL",
			Message: fmt.Sprintf("freelance_target_hourly_wage (%g) is below freelance_initial_hourly_wage (%g)", p.FreelanceTargetHourlyWage, p.FreelanceInitialHourlyWage),
		})
	}

	return msgs
}

// ValidateTimeBudget checks the fields used only by the effective hourly wage
// view. Kept separate so plain income simulations are not rejected over
// fields they never read.
func (p *Parameters) ValidateTimeBudget() []CalculationMessage {
	var msgs []CalculationMessage

	check := func(name string, v float64) {
		if v < 0 {
			msgs = append(msgs, CalculationMessage{
				Level:   LevelCritical,
				Code:    "INVALID_TIME_BUDGET",
				Message: fmt.Sprintf("%s must be non-negative, got %g", name, v),
			})
		}
	}

	check("office_work_hours_per_day", p.OfficeWorkHoursPerDay)
	check("office_commute_hours_per_day", p.OfficeCommuteHoursPerDay)
	check("office_preparation_hours_per_day", p.OfficePreparationHoursPerDay)
	check("office_work_days_per_week", p.OfficeWorkDaysPerWeek)
	check("freelance_commute_hours_per_day", p.FreelanceCommuteHoursPerDay)

	return msgs
}
