package storage

import (
	"context"

	apperrors "github.com/julianstephens/vdc-display/internal/errors"
	"github.com/julianstephens/vdc-display/internal/models"
)

type unavailableReader struct {
	source string
	err    error
}

// Unavailable returns a reader whose every fetch fails with err. It stands in
// when the data source cannot even be resolved, so the display still starts.
func Unavailable(source string, err error) Reader {
	return &unavailableReader{source: source, err: err}
}

func (r *unavailableReader) Fetch(context.Context, models.Query) (models.Snapshot, error) {
	return models.Snapshot{}, &apperrors.DataUnavailableError{Source: r.source, Err: r.err}
}

func (r *unavailableReader) Describe() string {
	return r.source
}
