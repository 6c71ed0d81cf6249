package storage

import (
	"time"

	"github.com/julianstephens/vdc-display/internal/constants"
	"github.com/julianstephens/vdc-display/internal/models"
)

// Demo returns the built-in figures shown when the database cannot be read
func Demo(q models.Query, now time.Time) models.Snapshot {
	return models.Snapshot{
		Shift: models.ShiftHours{
			Shift:             q.Shift,
			Date:              q.Date.Format(constants.DateFormat),
			HoursWorked:       87,
			HoursPlanned:      126,
			CarryoverHours:    6,
			VehiclesTotal:     48,
			VehiclesCompleted: 32,
		},
		Stages: []models.StageCounts{
			{Stage: constants.StageInstallation, Completed: 42, Planned: 60.5, Vehicles: 12},
			{Stage: constants.StagePPO, Completed: 24, Planned: 36, Vehicles: 8},
			{Stage: constants.StageShuttle, Completed: 9, Planned: 12, Vehicles: 6},
			{Stage: constants.StageFQA, Completed: 12, Planned: 20, Vehicles: 10},
		},
		FetchedAt: now,
	}
}
