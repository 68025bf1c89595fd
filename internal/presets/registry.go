// Package presets supplies named default parameter tables. Defaults live
// here, outside the projection core, so the model never depends on a
// particular configuration. An optional remote registry can serve additional
// presets; built-in tables are the fallback on any fetch problem.
package presets

import (
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"income-engine/internal/model"
)

const DefaultName = "default"

var (
	registryURL string
	cache       sync.Map
	client      *http.Client
)

func init() {
	registryURL = os.Getenv("PRESET_REGISTRY_URL")
	if registryURL != "" {
		client = &http.Client{
			Timeout: 2 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
}

// builtin holds the shipped parameter tables. "default" mirrors the published
// comparison scenario (JPY amounts, 22 to 60 years of age).
var builtin = map[string]model.Parameters{
	DefaultName: {
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
		FreelanceCommuteHoursPerDay:   0.0,
		FreelanceExpenseRate:          0.1,
		DeductionRateFreelance:        0.25,
	},
}

// Get resolves a preset by name. Remote presets are cached after the first
// fetch; built-in tables answer when no registry is configured or the fetch
// fails. The second return is false only when the name is unknown everywhere.
func Get(name string) (model.Parameters, bool) {
	if name == "" {
		name = DefaultName
	}

	if registryURL != "" {
		if cached, ok := cache.Load(name); ok {
			return cached.(model.Parameters), true
		}
		if p, ok := fetch(name); ok {
			cache.Store(name, p)
			return p, true
		}
	}

	p, ok := builtin[name]
	return p, ok
}

func fetch(name string) (model.Parameters, bool) {
	resp, err := client.Get(registryURL + "/presets/" + name)
	if err != nil {
		return model.Parameters{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return model.Parameters{}, false
	}

	var p model.Parameters
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return model.Parameters{}, false
	}
	return p, true
}
