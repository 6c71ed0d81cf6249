package system

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/vdc-display/internal/cli"
	"github.com/julianstephens/vdc-display/internal/constants"
	"github.com/julianstephens/vdc-display/internal/display"
	"github.com/julianstephens/vdc-display/internal/models"
	"github.com/julianstephens/vdc-display/internal/progress"
)

var nowFunc = time.Now

// SnapshotCmd reads the database once and prints what the display would show
type SnapshotCmd struct {
	Format string `help:"Output format." enum:"text,json,yaml" default:"text" short:"f"`
}

func (cmd *SnapshotCmd) Run(ctx *cli.Context) error {
	now := nowFunc()
	q := models.Query{Shift: progress.CurrentShift(now), Date: now}
	res := display.NewSource(ctx.Reader).Read(context.Background(), q, now)
	frame := display.BuildFrame(res, now, ctx.Config.RefreshInterval)

	switch cmd.Format {
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(frame)
	case "yaml":
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(frame)
	default:
		printFrame(stdout, frame, ctx.Reader.Describe())
		return nil
	}
}

func printFrame(w io.Writer, f models.Frame, source string) {
	fmt.Fprintf(w, "%s Progress (%s)\n", progress.ShiftLabel(f.Shift.Shift), f.Shift.Date)
	fmt.Fprintf(w, "Hours:     %.0f / %.0f (%d%%, %s)\n",
		f.Shift.HoursComplete, f.Shift.HoursTotal,
		progress.Whole(f.Shift.PercentComplete), progress.BandFor(f.Shift.PercentComplete))
	if f.Shift.HasCarryover() {
		fmt.Fprintf(w, "Carryover: %.0f new + %.0f carryover\n", f.Shift.HoursNew, f.Shift.CarryoverHours)
	}
	fmt.Fprintf(w, "Vehicles:  %d / %d completed\n", f.Shift.VehiclesCompleted, f.Shift.VehiclesTotal)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Stages:")
	for _, s := range f.Stages {
		fmt.Fprintf(w, "  %-14s %3d%%  %3d vehicles  %.1fh left\n",
			s.Stage, progress.Whole(s.PercentComplete), s.VehicleCount, s.HoursRemaining)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Source:    %s (%s)\n", f.Origin, source)
	fmt.Fprintf(w, "Updated:   %s\n", f.UpdatedAt.Format(constants.ClockFormat))
	if f.Notice != "" {
		fmt.Fprintf(w, "Notice:    %s\n", f.Notice)
	}
}
