package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/vdc-display/internal/constants"
	"github.com/julianstephens/vdc-display/internal/models"
	"github.com/julianstephens/vdc-display/internal/progress"
)

// Queries holds the dialect-specific aggregate queries.
// Every query takes the shift kind followed by the shift date.
type Queries struct {
	// ShiftTotals returns vehicle count, estimated hours and delivered count
	ShiftTotals string
	// CompletedHours returns the actual hours of completed work orders
	CompletedHours string
	// Carryover returns the latest carryover hours, or no row
	Carryover string
	// StageCounts returns stage name, vehicle count, remaining hours and completed hours per stage
	StageCounts string
}

// Tables lists the tables the queries read
var Tables = []string{"vehicles", "work_orders", "shift_summaries", "production_stages"}

// Collect runs the aggregate queries against db and assembles a snapshot
func Collect(ctx context.Context, db *sql.DB, q models.Query, queries Queries, now time.Time) (models.Snapshot, error) {
	date := q.Date.Format(constants.DateFormat)
	shift := string(q.Shift)

	hours := models.ShiftHours{Shift: q.Shift, Date: date}

	if err := db.QueryRowContext(ctx, queries.ShiftTotals, shift, date).
		Scan(&hours.VehiclesTotal, &hours.HoursPlanned, &hours.VehiclesCompleted); err != nil {
		return models.Snapshot{}, fmt.Errorf("query shift totals: %w", err)
	}

	if err := db.QueryRowContext(ctx, queries.CompletedHours, shift, date).Scan(&hours.HoursWorked); err != nil {
		return models.Snapshot{}, fmt.Errorf("query completed hours: %w", err)
	}

	err := db.QueryRowContext(ctx, queries.Carryover, shift, date).Scan(&hours.CarryoverHours)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return models.Snapshot{}, fmt.Errorf("query carryover: %w", err)
	}

	stages, err := collectStages(ctx, db, queries.StageCounts, shift, date)
	if err != nil {
		return models.Snapshot{}, err
	}

	return models.Snapshot{
		Shift:     hours,
		Stages:    stages,
		FetchedAt: now,
	}, nil
}

func collectStages(ctx context.Context, db *sql.DB, query, shift, date string) ([]models.StageCounts, error) {
	rows, err := db.QueryContext(ctx, query, shift, date)
	if err != nil {
		return nil, fmt.Errorf("query stage counts: %w", err)
	}
	defer rows.Close()

	var stages []models.StageCounts
	for rows.Next() {
		var (
			name                 string
			vehicles             int
			remaining, completed float64
		)
		if err := rows.Scan(&name, &vehicles, &remaining, &completed); err != nil {
			return nil, fmt.Errorf("scan stage counts: %w", err)
		}
		stage, ok := progress.LookupStage(name)
		if !ok {
			continue
		}
		stages = append(stages, models.StageCounts{
			Stage:     stage,
			Completed: completed,
			Planned:   completed + remaining,
			Vehicles:  vehicles,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read stage counts: %w", err)
	}

	return stages, nil
}
