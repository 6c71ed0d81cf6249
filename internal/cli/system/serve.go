package system

import (
	"context"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/julianstephens/vdc-display/internal/cli"
	"github.com/julianstephens/vdc-display/internal/display"
	"github.com/julianstephens/vdc-display/internal/web"
)

// stdout is where commands print their results
var stdout io.Writer = os.Stdout

// ServeCmd runs the refresh loop and serves the page to the floor TVs
type ServeCmd struct{}

func (cmd *ServeCmd) Run(ctx *cli.Context) error {
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", ctx.Config.Addr())
	if err != nil {
		return err
	}
	return cmd.serve(sigCtx, ctx, ln)
}

func (cmd *ServeCmd) serve(parent context.Context, ctx *cli.Context, ln net.Listener) error {
	renderer, err := web.NewRenderer()
	if err != nil {
		_ = ln.Close()
		return err
	}

	loop := display.NewLoop(ctx.Config, display.NewSource(ctx.Reader), renderer)
	server := web.NewServer(ctx.Config.Addr(), renderer)

	g, gctx := errgroup.WithContext(parent)
	g.Go(func() error {
		return loop.Run(gctx)
	})
	g.Go(func() error {
		return server.Serve(gctx, ln)
	})
	return g.Wait()
}
