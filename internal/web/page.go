package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"math"
	"time"

	"github.com/julianstephens/vdc-display/internal/constants"
	"github.com/julianstephens/vdc-display/internal/models"
	"github.com/julianstephens/vdc-display/internal/progress"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"hours": hours,
}).ParseFS(templateFS, "templates/*.gohtml"))

type stageCard struct {
	Name     constants.StageName
	Percent  int
	Vehicles int
}

// page is the view model for index.gohtml
type page struct {
	Title             string
	Origin            constants.Origin
	Notice            string
	ShiftLabel        string
	HasCarryover      bool
	HoursComplete     float64
	HoursNew          float64
	CarryoverHours    float64
	HoursTotal        float64
	Percent           int
	Band              progress.Band
	Stages            []stageCard
	VehiclesCompleted int
	VehiclesTotal     int
	UpdatedAt         string
	RefreshMinutes    int
	RefreshSeconds    int
}

func newPage(f models.Frame) page {
	percent := progress.Whole(f.Shift.PercentComplete)
	p := page{
		Title:             constants.AppTitle,
		Origin:            f.Origin,
		Notice:            f.Notice,
		ShiftLabel:        progress.ShiftLabel(f.Shift.Shift),
		HasCarryover:      f.Shift.HasCarryover(),
		HoursComplete:     f.Shift.HoursComplete,
		HoursNew:          f.Shift.HoursNew,
		CarryoverHours:    f.Shift.CarryoverHours,
		HoursTotal:        f.Shift.HoursTotal,
		Percent:           percent,
		Band:              progress.BandFor(f.Shift.PercentComplete),
		VehiclesCompleted: f.Shift.VehiclesCompleted,
		VehiclesTotal:     f.Shift.VehiclesTotal,
		UpdatedAt:         f.UpdatedAt.Format(constants.ClockFormat),
		RefreshMinutes:    int(f.RefreshInterval / time.Minute),
		RefreshSeconds:    int(f.RefreshInterval / time.Second),
	}
	for _, s := range f.Stages {
		p.Stages = append(p.Stages, stageCard{
			Name:     s.Stage,
			Percent:  progress.Whole(s.PercentComplete),
			Vehicles: s.VehicleCount,
		})
	}
	return p
}

// renderPage executes the full-screen template for one frame
func renderPage(f models.Frame) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "index.gohtml", newPage(f)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderLoading() ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "loading.gohtml", constants.AppTitle); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// hours rounds to whole hours for display
func hours(v float64) string {
	return fmt.Sprintf("%.0f", math.Round(v))
}
