package display

import (
	"fmt"
	"time"

	"github.com/julianstephens/vdc-display/internal/constants"
	"github.com/julianstephens/vdc-display/internal/models"
	"github.com/julianstephens/vdc-display/internal/progress"
)

// BuildFrame runs both calculators over the result and labels where the figures came from
func BuildFrame(res Result, now time.Time, interval time.Duration) models.Frame {
	frame := models.Frame{
		Shift:           progress.Shift(res.Snapshot.Shift),
		Stages:          progress.Stages(res.Snapshot.Stages),
		UpdatedAt:       res.Snapshot.FetchedAt,
		RenderedAt:      now,
		RefreshInterval: interval,
	}

	switch res.Kind {
	case KindLive:
		frame.Origin = constants.OriginLive
	case KindDemo:
		frame.Origin = constants.OriginDemo
		frame.Notice = "Demo data: shift database unavailable"
	case KindUnavailable:
		frame.Origin = constants.OriginStale
		frame.Notice = fmt.Sprintf("Showing figures from %s: shift database unavailable",
			res.Snapshot.FetchedAt.Format(constants.ClockFormat))
	}

	return frame
}
