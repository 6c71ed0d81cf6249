package models

import (
	"time"

	"github.com/julianstephens/vdc-display/internal/constants"
)

// Snapshot is a single read of the shared database
type Snapshot struct {
	Shift     ShiftHours    `json:"shift" yaml:"shift"`
	Stages    []StageCounts `json:"stages" yaml:"stages"`
	FetchedAt time.Time     `json:"fetched_at" yaml:"fetched_at"`
}

// Frame carries everything needed for one full redraw of the display
type Frame struct {
	Shift           ShiftRecord      `json:"shift" yaml:"shift"`
	Stages          []StageBreakdown `json:"stages" yaml:"stages"`
	Origin          constants.Origin `json:"origin" yaml:"origin"`
	Notice          string           `json:"notice,omitempty" yaml:"notice,omitempty"` // why the figures are not live
	UpdatedAt       time.Time        `json:"updated_at" yaml:"updated_at"`             // when the figures were read
	RenderedAt      time.Time        `json:"rendered_at" yaml:"rendered_at"`
	RefreshInterval time.Duration    `json:"refresh_interval" yaml:"refresh_interval"`
}

// IsLive reports whether the frame shows figures from the current read
func (f Frame) IsLive() bool {
	return f.Origin == constants.OriginLive
}
