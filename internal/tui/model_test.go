package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/vdc-display/internal/constants"
	"github.com/julianstephens/vdc-display/internal/models"
	"github.com/julianstephens/vdc-display/internal/progress"
)

func frame(notice string) models.Frame {
	return models.Frame{
		Shift: progress.Shift(models.ShiftHours{
			Shift:             constants.ShiftDay,
			HoursWorked:       450,
			HoursPlanned:      600,
			VehiclesTotal:     20,
			VehiclesCompleted: 12,
		}),
		Stages: progress.Stages([]models.StageCounts{
			{Stage: constants.StageInstallation, Completed: 80, Planned: 100, Vehicles: 9},
			{Stage: constants.StagePPO, Completed: 45, Planned: 90, Vehicles: 6},
		}),
		Origin:          constants.OriginLive,
		Notice:          notice,
		UpdatedAt:       time.Date(2024, 3, 4, 14, 5, 0, 0, time.UTC),
		RefreshInterval: 10 * time.Minute,
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestViewBeforeFirstFrame(t *testing.T) {
	m := NewModel()
	if got := m.View(); !strings.Contains(got, "Loading") {
		t.Errorf("View() = %q, want loading message", got)
	}
}

func TestViewShowsFrame(t *testing.T) {
	m, _ := update(t, NewModel(), tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = update(t, m, FrameMsg(frame("")))

	view := m.View()
	for _, want := range []string{
		"Day Shift Progress",
		"75% COMPLETE",
		"12 / 20",
		"02:05 PM",
		"every 10 minutes",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	last := -1
	for _, s := range constants.Stages {
		i := strings.Index(view, string(s))
		if i < 0 {
			t.Errorf("View() missing stage %s", s)
			continue
		}
		if i < last {
			t.Errorf("stage %s out of order", s)
		}
		last = i
	}

	if strings.Contains(view, "carryover") {
		t.Error("carryover shown without carryover hours")
	}
}

func TestViewShowsNotice(t *testing.T) {
	m, _ := update(t, NewModel(), FrameMsg(frame("Demo data: shift database unavailable")))
	if !strings.Contains(m.View(), "Demo data") {
		t.Error("View() missing notice")
	}
}

func TestOnlyCtrlCQuits(t *testing.T) {
	m := NewModel()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd != nil || m.quitting {
		t.Error("q should not quit the kiosk")
	}

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !m.quitting {
		t.Fatal("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

type recordingSender struct {
	msgs []tea.Msg
}

func (s *recordingSender) Send(msg tea.Msg) {
	s.msgs = append(s.msgs, msg)
}

func TestRendererSendsFrame(t *testing.T) {
	sender := &recordingSender{}
	r := NewRenderer(sender)

	if err := r.Render(context.Background(), frame("")); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(sender.msgs) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sender.msgs))
	}
	if _, ok := sender.msgs[0].(FrameMsg); !ok {
		t.Errorf("sent %T, want FrameMsg", sender.msgs[0])
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Render(ctx, frame("")); err == nil {
		t.Error("Render() on a cancelled context should fail")
	}

	if err := NewRenderer(nil).Render(context.Background(), frame("")); err == nil {
		t.Error("Render() without a program should fail")
	}
}
