// Package tui is the full-screen terminal rendition of the display for
// consoles without a browser. It takes no input apart from ctrl+c.
package tui

import (
	progressbar "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/vdc-display/internal/models"
	"github.com/julianstephens/vdc-display/internal/progress"
)

const defaultWidth = 80

// FrameMsg delivers a freshly computed frame to the program
type FrameMsg models.Frame

type Model struct {
	keys     KeyMap
	frame    *models.Frame
	bar      progressbar.Model
	stageBar progressbar.Model
	width    int
	height   int
	quitting bool
}

func NewModel() Model {
	return Model{
		keys:     DefaultKeyMap(),
		bar:      progressbar.New(progressbar.WithSolidFill(bandColors[progress.BandGood]), progressbar.WithoutPercentage()),
		stageBar: progressbar.New(progressbar.WithSolidFill(string(colorAccent)), progressbar.WithoutPercentage(), progressbar.WithWidth(16)),
		width:    defaultWidth,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
