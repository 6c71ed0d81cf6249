package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/vdc-display/internal/progress"
)

const (
	colorBackground = lipgloss.Color("#1a1a2e")
	colorCard       = lipgloss.Color("#2d2d44")
	colorAccent     = lipgloss.Color("#00d4ff")
	colorMuted      = lipgloss.Color("#888888")
	colorWarning    = lipgloss.Color("#ffaa00")
)

var bandColors = map[progress.Band]string{
	progress.BandGood:    "#00ff88",
	progress.BandWarning: "#ffaa00",
	progress.BandBehind:  "#ff4444",
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			MarginBottom(1)

	carryoverStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	noticeStyle = lipgloss.NewStyle().
			Foreground(colorBackground).
			Background(colorWarning).
			Padding(0, 1)

	bigNumberStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	stageCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorCard).
			Padding(0, 1).
			Width(20)

	stageNameStyle = lipgloss.NewStyle().
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)
)
