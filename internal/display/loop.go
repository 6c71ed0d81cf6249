// Package display drives the periodic refresh: read, calculate, redraw.
package display

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/julianstephens/vdc-display/internal/config"
	apperrors "github.com/julianstephens/vdc-display/internal/errors"
	"github.com/julianstephens/vdc-display/internal/logger"
	"github.com/julianstephens/vdc-display/internal/models"
	"github.com/julianstephens/vdc-display/internal/progress"
)

// Renderer redraws the whole display from a frame
type Renderer interface {
	Name() string
	Render(ctx context.Context, frame models.Frame) error
}

// Option configures a Loop
type Option func(*Loop)

// WithClock replaces the wall clock, mainly for tests
func WithClock(c clockwork.Clock) Option {
	return func(l *Loop) {
		l.clock = c
	}
}

// Loop refreshes the display on a fixed interval from a single goroutine
type Loop struct {
	cfg      config.Config
	source   *Source
	renderer Renderer
	clock    clockwork.Clock
}

func NewLoop(cfg config.Config, source *Source, renderer Renderer, opts ...Option) *Loop {
	l := &Loop{
		cfg:      cfg,
		source:   source,
		renderer: renderer,
		clock:    clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run draws once immediately and then once per refresh interval until ctx is done.
// Errors inside a tick are logged and never end the loop.
func (l *Loop) Run(ctx context.Context) error {
	logger.Info("Display refresh started",
		"source", l.source.Describe(),
		"renderer", l.renderer.Name(),
		"interval", l.cfg.RefreshInterval)

	l.Tick(ctx)

	ticker := l.clock.NewTicker(l.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Display refresh stopped")
			return nil
		case <-ticker.Chan():
			l.Tick(ctx)
		}
	}
}

// Tick performs one full refresh and returns the frame it drew
func (l *Loop) Tick(ctx context.Context) (models.Frame, error) {
	log := logger.With("tick", uuid.NewString()[:8])
	now := l.clock.Now()

	q := models.Query{Shift: progress.CurrentShift(now), Date: now}
	res := l.source.Read(ctx, q, now)

	switch res.Kind {
	case KindLive:
		log.Debug("Read shift figures", "shift", q.Shift)
	case KindDemo:
		log.Warn("Database unavailable, showing demo data", "error", res.Err)
	case KindUnavailable:
		log.Warn("Database unavailable, showing last known figures",
			"error", res.Err, "from", res.Snapshot.FetchedAt)
	}

	frame := BuildFrame(res, now, l.cfg.RefreshInterval)

	if err := l.render(ctx, frame); err != nil {
		log.Error("Render failed, skipping tick", "error", err)
		return frame, err
	}

	log.Info("Display refreshed",
		"origin", frame.Origin,
		"shift", frame.Shift.Shift,
		"percent", progress.Whole(frame.Shift.PercentComplete))
	return frame, nil
}

func (l *Loop) render(ctx context.Context, frame models.Frame) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &apperrors.RenderError{Renderer: l.renderer.Name(), Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if err := l.renderer.Render(ctx, frame); err != nil {
		return &apperrors.RenderError{Renderer: l.renderer.Name(), Err: err}
	}
	return nil
}
