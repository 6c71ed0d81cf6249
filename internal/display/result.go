package display

import (
	"context"
	"time"

	"github.com/julianstephens/vdc-display/internal/models"
	"github.com/julianstephens/vdc-display/internal/storage"
)

// Kind tags the outcome of one read
type Kind int

const (
	// KindLive carries the snapshot that was just read
	KindLive Kind = iota
	// KindDemo carries built-in figures because nothing was ever read
	KindDemo
	// KindUnavailable carries the last live snapshot because this read failed
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindLive:
		return "live"
	case KindDemo:
		return "demo"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Result is the outcome of one read: Live(snapshot), Demo(snapshot, cause)
// or Unavailable(lastKnown, cause).
type Result struct {
	Kind     Kind
	Snapshot models.Snapshot
	Err      error
}

func Live(s models.Snapshot) Result {
	return Result{Kind: KindLive, Snapshot: s}
}

func Demo(s models.Snapshot, cause error) Result {
	return Result{Kind: KindDemo, Snapshot: s, Err: cause}
}

func Unavailable(lastKnown models.Snapshot, cause error) Result {
	return Result{Kind: KindUnavailable, Snapshot: lastKnown, Err: cause}
}

// Source reads through a storage.Reader and remembers the last live snapshot.
// It is used from the render loop only.
type Source struct {
	reader    storage.Reader
	lastKnown *models.Snapshot
}

func NewSource(reader storage.Reader) *Source {
	return &Source{reader: reader}
}

// Describe names the underlying data source
func (s *Source) Describe() string {
	return s.reader.Describe()
}

// Read fetches the current figures and tags the result
func (s *Source) Read(ctx context.Context, q models.Query, now time.Time) Result {
	snap, err := s.reader.Fetch(ctx, q)
	if err == nil {
		s.lastKnown = &snap
		return Live(snap)
	}
	if s.lastKnown != nil {
		return Unavailable(*s.lastKnown, err)
	}
	return Demo(storage.Demo(q, now), err)
}
