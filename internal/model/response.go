package model

import "encoding/json"

type SimulationResponse struct {
	SimulationMetadata SimulationMetadata `json:"simulation_metadata"`
	SimulationResult   SimulationResult   `json:"simulation_result"`
}

type SimulationMetadata struct {
	SimulationID          string `json:"simulation_id"`
	Scenario              string `json:"scenario,omitempty"`
	Preset                string `json:"preset"`
	SimulationStartedAt   string `json:"simulation_started_at"`
	SimulationCompletedAt string `json:"simulation_completed_at"`
	SimulationDurationMs  int64  `json:"simulation_duration_ms"`
	SimulationOutcome     string `json:"simulation_outcome"`
}

type SimulationResult struct {
	Messages            []CalculationMessage `json:"messages"`
	Years               []int                `json:"years"`
	AnnualIncome        PathSeries           `json:"annual_income"`
	CumulativeIncome    PathSeries           `json:"cumulative_income"`
	EffectiveHourlyWage *PathSeries          `json:"effective_hourly_wage,omitempty"`
	Totals              Totals               `json:"totals"`
	ParameterOverrides  json.RawMessage      `json:"parameter_overrides,omitempty"`
}

// PathSeries pairs the two career paths, aligned index by index to Years.
type PathSeries struct {
	Office    []float64 `json:"office"`
	Freelance []float64 `json:"freelance"`
}

// Totals are the final cumulative amounts; Difference is freelance - office.
type Totals struct {
	Office     float64 `json:"office"`
	Freelance  float64 `json:"freelance"`
	Difference float64 `json:"difference"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
