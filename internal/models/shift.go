package models

import (
	"time"

	"github.com/julianstephens/vdc-display/internal/constants"
)

// Query selects the shift a snapshot is read for
type Query struct {
	Shift constants.ShiftKind
	Date  time.Time
}

// ShiftHours holds the raw labor figures for one shift as read from the database
type ShiftHours struct {
	Shift             constants.ShiftKind `json:"shift" yaml:"shift"`
	Date              string              `json:"date" yaml:"date"`                             // YYYY-MM-DD
	HoursWorked       float64             `json:"hours_worked" yaml:"hours_worked"`             // actual hours on completed work orders
	HoursPlanned      float64             `json:"hours_planned" yaml:"hours_planned"`           // estimated hours of work arriving this shift
	CarryoverHours    float64             `json:"carryover_hours" yaml:"carryover_hours"`       // hours inherited from the previous shift
	VehiclesTotal     int                 `json:"vehicles_total" yaml:"vehicles_total"`         // vehicles assigned to the shift
	VehiclesCompleted int                 `json:"vehicles_completed" yaml:"vehicles_completed"` // vehicles delivered
}

// ShiftRecord is the computed shift progress shown on the display
type ShiftRecord struct {
	Shift             constants.ShiftKind `json:"shift" yaml:"shift"`
	Date              string              `json:"date" yaml:"date"`
	HoursComplete     float64             `json:"hours_complete" yaml:"hours_complete"`
	HoursNew          float64             `json:"hours_new" yaml:"hours_new"`
	CarryoverHours    float64             `json:"carryover_hours" yaml:"carryover_hours"`
	HoursTotal        float64             `json:"hours_total" yaml:"hours_total"` // HoursNew + CarryoverHours
	PercentComplete   float64             `json:"percent_complete" yaml:"percent_complete"`
	VehiclesTotal     int                 `json:"vehicles_total" yaml:"vehicles_total"`
	VehiclesCompleted int                 `json:"vehicles_completed" yaml:"vehicles_completed"`
}

// HasCarryover reports whether the shift inherited work from the previous shift
func (r ShiftRecord) HasCarryover() bool {
	return r.CarryoverHours > 0
}
