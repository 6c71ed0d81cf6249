package progress

import "github.com/julianstephens/vdc-display/internal/models"

// Shift computes the shift record from raw hours. Carryover is added to the
// planned hours to form the shift total.
func Shift(h models.ShiftHours) models.ShiftRecord {
	planned := nonNegative(h.HoursPlanned)
	carryover := nonNegative(h.CarryoverHours)
	worked := nonNegative(h.HoursWorked)
	total := planned + carryover

	return models.ShiftRecord{
		Shift:             h.Shift,
		Date:              h.Date,
		HoursComplete:     worked,
		HoursNew:          planned,
		CarryoverHours:    carryover,
		HoursTotal:        total,
		PercentComplete:   Percent(worked, total),
		VehiclesTotal:     max(h.VehiclesTotal, 0),
		VehiclesCompleted: max(h.VehiclesCompleted, 0),
	}
}
