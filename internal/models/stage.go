package models

import "github.com/julianstephens/vdc-display/internal/constants"

// StageCounts holds the raw completed and planned figures for one production stage
type StageCounts struct {
	Stage     constants.StageName `json:"stage" yaml:"stage"`
	Completed float64             `json:"completed" yaml:"completed"`
	Planned   float64             `json:"planned" yaml:"planned"`
	Vehicles  int                 `json:"vehicles" yaml:"vehicles"`
}

// StageBreakdown is the computed progress of one production stage
type StageBreakdown struct {
	Stage           constants.StageName `json:"stage" yaml:"stage"`
	Order           int                 `json:"order" yaml:"order"` // 1-based display position
	PercentComplete float64             `json:"percent_complete" yaml:"percent_complete"`
	VehicleCount    int                 `json:"vehicle_count" yaml:"vehicle_count"`
	HoursCompleted  float64             `json:"hours_completed" yaml:"hours_completed"`
	HoursRemaining  float64             `json:"hours_remaining" yaml:"hours_remaining"`
}
