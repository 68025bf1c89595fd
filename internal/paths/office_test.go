package paths

import (
	"math"
	"testing"

	"income-engine/internal/model"
)

func testParams() *model.Parameters {
	return &model.Parameters{
		AgeStart: 22,
		AgeEnd:   60,

		OfficeInitialMonthlyNetSalary: 200000,
		OfficeBonusMonths:             2.0,
		OfficeRaiseRate:               0.02,
		OfficeWorkHoursPerDay:         8.0,
		OfficeCommuteHoursPerDay:      1.5,
		OfficePreparationHoursPerDay:  1.0,
		OfficeWorkDaysPerWeek:         5,
		DeductionRateEmployee:         0.2,

		FreelanceLearningPeriodMonths: 6,
		FreelanceInitialHourlyWage:    1500,
		FreelanceTargetHourlyWage:     8000,
		FreelanceTargetReachYears:     5,
		FreelanceHourlyWageGrowthType: "quadratic",
		FreelancePostTargetRaiseRate:  0.01,
		FreelanceWorkHoursPerDay:      8.0,
		FreelanceWorkDaysPerMonth:     20.0,
		FreelanceExpenseRate:          0.1,
		DeductionRateFreelance:        0.25,
	}
}

func TestOfficeRecurrence(t *testing.T) {
	p := testParams()
	income := (&OfficeProjector{}).Project(p, 3)

	if income[0] != 200000*14 {
		t.Fatalf("expected first year 2800000, got %g", income[0])
	}
	if math.Abs(income[1]-2800000*1.02) > 1e-6 {
		t.Fatalf("expected second year 2856000, got %g", income[1])
	}
	if math.Abs(income[2]-2800000*1.02*1.02) > 1e-6 {
		t.Fatalf("expected third year %g, got %g", 2800000*1.02*1.02, income[2])
	}
}

func TestOfficeNegativeRaiseStaysNonNegative(t *testing.T) {
	p := testParams()
	p.OfficeRaiseRate = -1.5

	income := (&OfficeProjector{}).Project(p, 4)
	for i, v := range income {
		if v < 0 {
			t.Fatalf("income[%d] = %g, must be non-negative", i, v)
		}
	}
	if income[1] != 0 {
		t.Fatalf("expected salary floored at zero after a raise below -100%%, got %g", income[1])
	}
}

func TestOfficeZeroRaiseIsFlat(t *testing.T) {
	p := testParams()
	p.OfficeRaiseRate = 0

	income := (&OfficeProjector{}).Project(p, 5)
	for i, v := range income {
		if v != income[0] {
			t.Fatalf("expected flat series with zero raise, income[%d] = %g", i, v)
		}
	}
}

func TestOfficeHoursPerYear(t *testing.T) {
	p := testParams()
	// (8 + 1.5 + 1.0) hours/day * 5 days/week * 52 weeks.
	want := 10.5 * 5 * 52
	if got := (&OfficeProjector{}).HoursPerYear(p); math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %g hours per year, got %g", want, got)
	}
}

func TestRegistryKnowsBothPaths(t *testing.T) {
	for _, name := range []string{Office, Freelance} {
		if _, ok := Get(name); !ok {
			t.Fatalf("path %q missing from registry", name)
		}
	}
	if _, ok := Get("gig"); ok {
		t.Fatal("unknown path name must not resolve")
	}
}
