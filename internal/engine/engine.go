// Package engine orchestrates a simulation: resolve the preset, overlay the
// caller's parameters, validate, project both paths and aggregate.
package engine

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"income-engine/internal/jsonpatch"
	"income-engine/internal/model"
	"income-engine/internal/paths"
	"income-engine/internal/presets"
	"income-engine/internal/series"
)

// Process runs one simulation. Validation failures never produce partial
// series: on any CRITICAL message the result carries only the messages and
// the outcome is FAILURE.
func Process(req *model.SimulationRequest) *model.SimulationResponse {
	start := time.Now()

	presetName := req.Preset
	if presetName == "" {
		presetName = presets.DefaultName
	}

	result, outcome := run(req, presetName)

	for i := range result.Messages {
		result.Messages[i].ID = i
	}
	if result.Messages == nil {
		result.Messages = []model.CalculationMessage{}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.SimulationResponse{
		SimulationMetadata: model.SimulationMetadata{
			SimulationID:          uuid.New().String(),
			Scenario:              req.Scenario,
			Preset:                presetName,
			SimulationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			SimulationCompletedAt: now.Format(time.RFC3339),
			SimulationDurationMs:  elapsed.Milliseconds(),
			SimulationOutcome:     outcome,
		},
		SimulationResult: *result,
	}
}

func run(req *model.SimulationRequest, presetName string) (*model.SimulationResult, string) {
	result := &model.SimulationResult{}

	base, ok := presets.Get(presetName)
	if !ok {
		result.Messages = append(result.Messages, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    "UNKNOWN_PRESET",
			Message: "Unknown preset: " + presetName,
		})
		return result, model.OutcomeFailure
	}

	// The request's parameters overlay the preset field by field; anything
	// not supplied keeps the preset value.
	params := base
	if len(req.Parameters) > 0 {
		if err := json.Unmarshal(req.Parameters, &params); err != nil {
			result.Messages = append(result.Messages, model.CalculationMessage{
				Level:   model.LevelCritical,
				Code:    "INVALID_PARAMETERS",
				Message: "Parameters are not a valid JSON object: " + err.Error(),
			})
			return result, model.OutcomeFailure
		}
	}

	result.Messages = append(result.Messages, params.Validate()...)
	if req.Options.IncludeEffectiveHourlyWage {
		result.Messages = append(result.Messages, params.ValidateTimeBudget()...)
	}
	if model.HasCritical(result.Messages) {
		return result, model.OutcomeFailure
	}

	years := params.Years()
	n := len(years)

	office, _ := paths.Get(paths.Office)
	freelance, _ := paths.Get(paths.Freelance)

	annualOffice := office.Project(&params, n)
	annualFreelance := freelance.Project(&params, n)

	cumulativeOffice := series.Cumulative(annualOffice)
	cumulativeFreelance := series.Cumulative(annualFreelance)

	result.Years = years
	result.AnnualIncome = model.PathSeries{Office: annualOffice, Freelance: annualFreelance}
	result.CumulativeIncome = model.PathSeries{Office: cumulativeOffice, Freelance: cumulativeFreelance}

	totalOffice := series.Total(annualOffice)
	totalFreelance := series.Total(annualFreelance)
	result.Totals = model.Totals{
		Office:     totalOffice,
		Freelance:  totalFreelance,
		Difference: totalFreelance - totalOffice,
	}

	if req.Options.IncludeEffectiveHourlyWage {
		result.EffectiveHourlyWage = &model.PathSeries{
			Office:    series.EffectiveHourlyWage(annualOffice, office.HoursPerYear(&params)),
			Freelance: series.EffectiveHourlyWage(annualFreelance, freelance.HoursPerYear(&params)),
		}
	}

	if len(req.Parameters) > 0 {
		result.ParameterOverrides = overridePatch(&base, &params)
	}

	return result, model.OutcomeSuccess
}

// overridePatch reports, as an RFC 6902 patch, how the effective parameters
// deviate from the preset. Diagnostic only; a marshalling problem just means
// no patch.
func overridePatch(base, effective *model.Parameters) []byte {
	var a, b interface{}

	ab, err := json.Marshal(base)
	if err != nil {
		return nil
	}
	bb, err := json.Marshal(effective)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(ab, &a); err != nil {
		return nil
	}
	if err := json.Unmarshal(bb, &b); err != nil {
		return nil
	}

	ops := jsonpatch.Diff(a, b, "")
	if len(ops) == 0 {
		return nil
	}

	patch, err := json.Marshal(ops)
	if err != nil {
		return nil
	}
	return patch
}
