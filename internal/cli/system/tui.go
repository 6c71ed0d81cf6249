package system

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/julianstephens/vdc-display/internal/cli"
	"github.com/julianstephens/vdc-display/internal/display"
	"github.com/julianstephens/vdc-display/internal/tui"
)

// TuiCmd shows the display full screen in the terminal
type TuiCmd struct{}

func (cmd *TuiCmd) Run(ctx *cli.Context) error {
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cmd.run(sigCtx, ctx, tea.WithAltScreen())
}

// run drives the program until it quits or parent is cancelled. Signals are
// handled by the caller, so bubbletea's own handler is turned off.
func (cmd *TuiCmd) run(parent context.Context, ctx *cli.Context, opts ...tea.ProgramOption) error {
	runCtx, cancel := context.WithCancel(parent)
	defer cancel()

	opts = append(opts, tea.WithoutSignalHandler())
	p := tea.NewProgram(tui.NewModel(), opts...)
	loop := display.NewLoop(ctx.Config, display.NewSource(ctx.Reader), tui.NewRenderer(p))

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		return loop.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrInterrupted) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		p.Quit()
		return nil
	})
	return g.Wait()
}
