package model

import "encoding/json"

type SimulationRequest struct {
	Scenario   string            `json:"scenario,omitempty"`
	Preset     string            `json:"preset,omitempty"`
	Parameters json.RawMessage   `json:"parameters,omitempty"`
	Options    SimulationOptions `json:"options"`
}

type SimulationOptions struct {
	IncludeEffectiveHourlyWage bool `json:"include_effective_hourly_wage"`
}
