package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

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
		WHERE shift_assigned = ?
		AND DATE(arrival_time) = ?`,
	CompletedHours: `
		SELECT COALESCE(SUM(wo.actual_hours), 0)
		FROM work_orders wo
		JOIN vehicles v ON wo.vehicle_id = v.id
		WHERE v.shift_assigned = ?
		AND DATE(v.arrival_time) = ?
		AND wo.status = 'complete'`,
	Carryover: `
		SELECT COALESCE(carryover_hours, 0)
		FROM shift_summaries
		WHERE shift_type = ?
		AND shift_date = ?
		ORDER BY created_at DESC
		LIMIT 1`,
	StageCounts: `
		SELECT
			ps.stage_name,
			COUNT(DISTINCT v.id),
			COALESCE(SUM(CASE WHEN wo.status != 'complete' THEN wo.estimated_hours ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN wo.status = 'complete' THEN wo.actual_hours ELSE 0 END), 0)
		FROM production_stages ps
		LEFT JOIN vehicles v ON v.current_stage_id = ps.id
			AND v.shift_assigned = ?
			AND DATE(v.arrival_time) = ?
		LEFT JOIN work_orders wo ON wo.vehicle_id = v.id
		GROUP BY ps.id, ps.stage_name, ps.stage_order
		ORDER BY ps.stage_order`,
}

// Reader reads the shared SQLite database file in read-only mode
type Reader struct {
	path string
}

func New(path string) *Reader {
	return &Reader{path: path}
}

func (r *Reader) Describe() string {
	return r.path
}

// Fetch opens the database, runs the aggregate queries and closes it again.
// A missing or unreadable file is reported as a DataUnavailableError.
func (r *Reader) Fetch(ctx context.Context, q models.Query) (models.Snapshot, error) {
	db, err := r.open()
	if err != nil {
		return models.Snapshot{}, err
	}
	defer db.Close()

	snap, err := storage.Collect(ctx, db, q, queries, nowFunc())
	if err != nil {
		return models.Snapshot{}, &apperrors.DataUnavailableError{Source: r.path, Err: err}
	}
	return snap, nil
}

// MissingTables returns the consumed tables the database file lacks
func (r *Reader) MissingTables(ctx context.Context) ([]string, error) {
	db, err := r.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var missing []string
	for _, table := range storage.Tables {
		exists, err := tableExists(ctx, db, table)
		if err != nil {
			return nil, &apperrors.DataUnavailableError{Source: r.path, Err: err}
		}
		if !exists {
			missing = append(missing, table)
		}
	}
	return missing, nil
}

func (r *Reader) open() (*sql.DB, error) {
	info, err := os.Stat(r.path)
	if err != nil {
		return nil, &apperrors.DataUnavailableError{Source: r.path, Err: fmt.Errorf("database not found: %w", err)}
	}
	if info.IsDir() {
		return nil, &apperrors.DataUnavailableError{Source: r.path, Err: fmt.Errorf("database path is a directory")}
	}

	db, err := openReadOnly(r.path)
	if err != nil {
		return nil, &apperrors.DataUnavailableError{Source: r.path, Err: err}
	}
	return db, nil
}

// DSN builds the read-only URI for path
func DSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve database path: %w", err)
	}
	return fmt.Sprintf("file:%s?mode=ro", filepath.ToSlash(abs)), nil
}

func openReadOnly(path string) (*sql.DB, error) {
	dsn, err := DSN(path)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// tableExists checks if a table or view exists in the SQLite database.
// The check is case-insensitive to match SQLite's behavior.
func tableExists(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var count int
	row := db.QueryRowContext(ctx, "SELECT count(*) FROM sqlite_master WHERE type IN ('table', 'view') AND name COLLATE NOCASE = ?", name)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
