package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/vdc-display/internal/models"
)

var errNoProgram = errors.New("terminal program not started")

// Sender is the part of *tea.Program the renderer needs
type Sender interface {
	Send(msg tea.Msg)
}

// Renderer forwards frames to a running bubbletea program
type Renderer struct {
	program Sender
}

func NewRenderer(program Sender) *Renderer {
	return &Renderer{program: program}
}

func (r *Renderer) Name() string {
	return "tui"
}

func (r *Renderer) Render(ctx context.Context, f models.Frame) error {
	if r.program == nil {
		return errNoProgram
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	r.program.Send(FrameMsg(f))
	return nil
}
