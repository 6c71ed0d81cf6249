package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/vdc-display/internal/constants"
	"github.com/julianstephens/vdc-display/internal/progress"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.frame == nil {
		return m.place(labelStyle.Render("Loading shift progress..."))
	}

	f := m.frame
	var sections []string

	if f.Notice != "" {
		sections = append(sections, noticeStyle.Render(f.Notice))
	}

	sections = append(sections, headerStyle.Render(progress.ShiftLabel(f.Shift.Shift)+" Progress"))

	if f.Shift.HasCarryover() {
		sections = append(sections, carryoverStyle.Render(fmt.Sprintf("%.0f hours (%.0f new + %.0f carryover)",
			f.Shift.HoursTotal, f.Shift.HoursNew, f.Shift.CarryoverHours)))
	}

	sections = append(sections,
		lipgloss.JoinHorizontal(lipgloss.Bottom,
			bigNumberStyle.Render(fmt.Sprintf("%.0f", f.Shift.HoursComplete)),
			labelStyle.Render(" / "),
			bigNumberStyle.Render(fmt.Sprintf("%.0f", f.Shift.HoursTotal)),
			labelStyle.Render("  HOURS"),
		),
	)

	bar := m.bar
	bar.Width = max(m.width-8, 10)
	bar.FullColor = bandColors[progress.BandFor(f.Shift.PercentComplete)]
	sections = append(sections,
		bar.ViewAs(f.Shift.PercentComplete/100),
		bigNumberStyle.Render(fmt.Sprintf("%d%% COMPLETE", progress.Whole(f.Shift.PercentComplete))),
		"",
		headerStyle.Render("Stage Breakdown"),
	)

	cards := make([]string, 0, len(f.Stages))
	for _, s := range f.Stages {
		cards = append(cards, stageCardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			stageNameStyle.Render(string(s.Stage)),
			bigNumberStyle.Render(fmt.Sprintf("%d%%", progress.Whole(s.PercentComplete))),
			m.stageBar.ViewAs(s.PercentComplete/100),
			labelStyle.Render(fmt.Sprintf("%d vehicles", s.VehicleCount)),
		)))
	}
	sections = append(sections,
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		fmt.Sprintf("%s  %s",
			bigNumberStyle.Render(fmt.Sprintf("%d / %d", f.Shift.VehiclesCompleted, f.Shift.VehiclesTotal)),
			labelStyle.Render("VEHICLES COMPLETED"),
		),
		footerStyle.Render(fmt.Sprintf("Last Updated: %s • Auto-refresh every %d minutes",
			f.UpdatedAt.Format(constants.ClockFormat), int(f.RefreshInterval/time.Minute))),
	)

	return m.place(lipgloss.JoinVertical(lipgloss.Center, sections...))
}

func (m Model) place(content string) string {
	if m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
