package paths

import (
	"math"
	"testing"
)

func TestFreelanceLearningPeriodEarnsNothing(t *testing.T) {
	p := testParams() // 6 month learning period, ceil(0.5) = 1 suppressed year
	income := (&FreelanceProjector{}).Project(p, 5)

	if income[0] != 0 {
		t.Fatalf("expected zero income during learning period, got %g", income[0])
	}
	if income[1] == 0 {
		t.Fatal("expected paid work from the second year on")
	}
}

func TestFreelanceZeroLearningPeriodSuppressesNoYear(t *testing.T) {
	p := testParams()
	p.FreelanceLearningPeriodMonths = 0

	income := (&FreelanceProjector{}).Project(p, 3)
	if income[0] == 0 {
		t.Fatal("with no learning period the first year must be paid")
	}
}

func TestFreelanceFirstPaidYearUsesFractionalWorkYears(t *testing.T) {
	p := testParams()
	income := (&FreelanceProjector{}).Project(p, 3)

	// Year index 1 with a 6 month learning period: workYears = 1 - 0.5 = 0.5,
	// wage = 1500 + 6500*(0.5/5)^2, then hours, expenses and deductions.
	hourly := 1500 + 6500*math.Pow(0.5/5, 2)
	want := hourly * 8 * 20 * 12 * (1 - 0.1) * (1 - 0.25)
	if math.Abs(income[1]-want) > 1e-6 {
		t.Fatalf("expected %g for first paid year, got %g", want, income[1])
	}
}

func TestFreelanceLongLearningPeriodSuppressesMultipleYears(t *testing.T) {
	p := testParams()
	p.FreelanceLearningPeriodMonths = 30 // 2.5 years, ceil = 3 suppressed years

	income := (&FreelanceProjector{}).Project(p, 6)
	for i := 0; i < 3; i++ {
		if income[i] != 0 {
			t.Fatalf("expected year %d suppressed, got %g", i, income[i])
		}
	}
	if income[3] == 0 {
		t.Fatal("expected paid work in year 3")
	}
}

func TestFreelanceImmediateTarget(t *testing.T) {
	p := testParams()
	p.FreelanceLearningPeriodMonths = 0
	p.FreelanceTargetReachYears = 0

	income := (&FreelanceProjector{}).Project(p, 2)

	want := 8000.0 * 8 * 20 * 12 * (1 - 0.1) * (1 - 0.25)
	if math.Abs(income[0]-want) > 1e-6 {
		t.Fatalf("expected immediate target wage income %g, got %g", want, income[0])
	}
	if math.Abs(income[1]-want*1.01) > 1e-6 {
		t.Fatalf("expected post-target compounding in year 1, got %g", income[1])
	}
}

func TestFreelanceNonNegative(t *testing.T) {
	p := testParams()
	income := (&FreelanceProjector{}).Project(p, 40)
	for i, v := range income {
		if v < 0 {
			t.Fatalf("income[%d] = %g, must be non-negative", i, v)
		}
	}
}

func TestFreelanceHoursPerYear(t *testing.T) {
	p := testParams()
	p.FreelanceCommuteHoursPerDay = 0

	// 8 hours/day * 20 days/month * 12 months.
	if got := (&FreelanceProjector{}).HoursPerYear(p); got != 8*20*12 {
		t.Fatalf("expected 1920 hours per year, got %g", got)
	}
}
