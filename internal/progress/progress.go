package progress

import (
	"math"
	"time"

	"github.com/julianstephens/vdc-display/internal/constants"
)

// Band classifies a completion percentage for colouring
type Band string

const (
	BandGood    Band = "good"
	BandWarning Band = "warning"
	BandBehind  Band = "behind"
)

// Percent returns completed/total as a percentage clamped to [0, 100].
// A zero or negative total yields 0.
func Percent(completed, total float64) float64 {
	if total <= 0 || math.IsNaN(completed) || math.IsNaN(total) {
		return 0
	}
	p := completed / total * 100
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// Whole truncates a percentage for display, matching how the floor has always read it
func Whole(p float64) int {
	return int(math.Floor(p))
}

// BandFor returns the colour band of a percentage
func BandFor(p float64) Band {
	switch w := Whole(p); {
	case w >= constants.ProgressGoodThreshold:
		return BandGood
	case w >= constants.ProgressWarningThreshold:
		return BandWarning
	default:
		return BandBehind
	}
}

// CurrentShift returns the shift running at t
func CurrentShift(t time.Time) constants.ShiftKind {
	if h := t.Hour(); h >= constants.DayShiftStartHour && h < constants.NightShiftStartHour {
		return constants.ShiftDay
	}
	return constants.ShiftNight
}

// ShiftLabel is the heading shown for a shift
func ShiftLabel(s constants.ShiftKind) string {
	if s == constants.ShiftNight {
		return "Night Shift"
	}
	return "Day Shift"
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
