package progress

import (
	"strings"

	"github.com/julianstephens/vdc-display/internal/constants"
	"github.com/julianstephens/vdc-display/internal/models"
)

// Stages computes the breakdown for the fixed production stages. The result
// always has one entry per stage in display order; stages missing from counts
// show zero, unknown names are dropped and repeated names are summed.
func Stages(counts []models.StageCounts) []models.StageBreakdown {
	index := make(map[constants.StageName]int, len(constants.Stages))
	out := make([]models.StageBreakdown, len(constants.Stages))
	planned := make([]float64, len(constants.Stages))

	for i, name := range constants.Stages {
		index[name] = i
		out[i] = models.StageBreakdown{Stage: name, Order: i + 1}
	}

	for _, c := range counts {
		name, ok := LookupStage(string(c.Stage))
		if !ok {
			continue
		}
		i := index[name]
		out[i].HoursCompleted += nonNegative(c.Completed)
		out[i].VehicleCount += max(c.Vehicles, 0)
		planned[i] += nonNegative(c.Planned)
	}

	for i := range out {
		out[i].HoursRemaining = max(planned[i]-out[i].HoursCompleted, 0)
		out[i].PercentComplete = Percent(out[i].HoursCompleted, planned[i])
	}

	return out
}

// LookupStage matches a stage name case-insensitively against the fixed stages
func LookupStage(name string) (constants.StageName, bool) {
	name = strings.TrimSpace(name)
	for _, s := range constants.Stages {
		if strings.EqualFold(string(s), name) {
			return s, true
		}
	}
	return "", false
}
