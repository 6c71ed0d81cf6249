package storage

import (
	"context"

	"github.com/julianstephens/vdc-display/internal/models"
)

// Reader reads the current shift figures from the shared database.
// Implementations open the database read-only and release it before returning.
type Reader interface {
	Fetch(ctx context.Context, q models.Query) (models.Snapshot, error)
	// Describe names the data source for logs and diagnostics, without secrets
	Describe() string
}

// Inspector is implemented by readers that support health checks
type Inspector interface {
	// MissingTables returns the consumed tables the database does not have
	MissingTables(ctx context.Context) ([]string, error)
}
