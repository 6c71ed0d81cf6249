package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	apperrors "github.com/julianstephens/vdc-display/internal/errors"
	"github.com/julianstephens/vdc-display/internal/models"
	"github.com/julianstephens/vdc-display/internal/storage"
)

var nowFunc = time.Now

var queries = storage.Queries{
	ShiftTotals: `
		SELECT
			COUNT(*),
			COALESCE(SUM(estimated_labor_hours), 0),
			COUNT(CASE WHEN status = 'delivered' THEN 1 END)
		FROM vehicles
		WHERE shift_assigned = $1
		AND DATE(arrival_time) = $2::date`,
	CompletedHours: `
		SELECT COALESCE(SUM(wo.actual_hours), 0)
		FROM work_orders wo
		JOIN vehicles v ON wo.vehicle_id = v.id
		WHERE v.shift_assigned = $1
		AND DATE(v.arrival_time) = $2::date
		AND wo.status = 'complete'`,
	Carryover: `
		SELECT COALESCE(carryover_hours, 0)
		FROM shift_summaries
		WHERE shift_type = $1
		AND shift_date = $2::date
		ORDER BY created_at DESC
		LIMIT 1`,
	StageCounts: `
		SELECT
			ps.stage_name,
			COUNT(DISTINCT v.id),
			COALESCE(SUM(CASE WHEN wo.status <> 'complete' THEN wo.estimated_hours ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN wo.status = 'complete' THEN wo.actual_hours ELSE 0 END), 0)
		FROM production_stages ps
		LEFT JOIN vehicles v ON v.current_stage_id = ps.id
			AND v.shift_assigned = $1
			AND DATE(v.arrival_time) = $2::date
		LEFT JOIN work_orders wo ON wo.vehicle_id = v.id
		GROUP BY ps.id, ps.stage_name, ps.stage_order
		ORDER BY ps.stage_order`,
}

// Reader reads the shared logistics database from PostgreSQL
type Reader struct {
	connStr string
}

// New returns a reader for connStr. Every transaction it runs is read-only.
func New(connStr string) *Reader {
	return &Reader{connStr: withReadOnly(connStr)}
}

func (r *Reader) Describe() string {
	return MaskPassword(r.connStr)
}

// Fetch connects, runs the aggregate queries and disconnects again
func (r *Reader) Fetch(ctx context.Context, q models.Query) (models.Snapshot, error) {
	db, err := r.open(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	defer db.Close()

	snap, err := storage.Collect(ctx, db, q, queries, nowFunc())
	if err != nil {
		return models.Snapshot{}, &apperrors.DataUnavailableError{Source: r.Describe(), Err: err}
	}
	return snap, nil
}

// MissingTables returns the consumed tables visible on the search path that do not exist
func (r *Reader) MissingTables(ctx context.Context) ([]string, error) {
	db, err := r.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var missing []string
	for _, table := range storage.Tables {
		var exists bool
		if err := db.QueryRowContext(ctx, "SELECT to_regclass($1) IS NOT NULL", table).Scan(&exists); err != nil {
			return nil, &apperrors.DataUnavailableError{Source: r.Describe(), Err: err}
		}
		if !exists {
			missing = append(missing, table)
		}
	}
	return missing, nil
}

func (r *Reader) open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("postgres", r.connStr)
	if err != nil {
		return nil, &apperrors.DataUnavailableError{Source: r.Describe(), Err: fmt.Errorf("failed to open database: %w", err)}
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		if strings.Contains(err.Error(), "SSL is not enabled on the server") && !hasSSLMode(r.connStr) {
			err = fmt.Errorf("%w (hint: try adding ?sslmode=disable to your connection string)", err)
		}
		return nil, &apperrors.DataUnavailableError{Source: r.Describe(), Err: fmt.Errorf("failed to connect to database: %w", err)}
	}
	return db, nil
}
