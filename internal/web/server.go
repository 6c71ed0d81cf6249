// Package web serves the full-screen shift progress page to the floor TVs.
package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"

	"github.com/julianstephens/vdc-display/internal/constants"
	"github.com/julianstephens/vdc-display/internal/logger"
	"github.com/julianstephens/vdc-display/internal/models"
)

// Renderer turns frames into the page served on "/". The latest page is
// swapped in atomically so handlers never see a partial redraw.
type Renderer struct {
	page    atomic.Pointer[[]byte]
	loading []byte
}

func NewRenderer() (*Renderer, error) {
	loading, err := renderLoading()
	if err != nil {
		return nil, err
	}
	return &Renderer{loading: loading}, nil
}

func (r *Renderer) Name() string {
	return "web"
}

// Render builds the whole page for f and publishes it
func (r *Renderer) Render(_ context.Context, f models.Frame) error {
	body, err := renderPage(f)
	if err != nil {
		return err
	}
	r.page.Store(&body)
	return nil
}

// Page returns the latest rendered page, or nil before the first frame
func (r *Renderer) Page() []byte {
	if p := r.page.Load(); p != nil {
		return *p
	}
	return nil
}

// ServeHTTP serves the display page on "/" only
func (r *Renderer) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.URL.Path != "/" {
		http.NotFound(w, req)
		return
	}
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	body := r.Page()
	if body == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write(r.loading)
		return
	}
	_, _ = w.Write(body)
}

// Server wraps the HTTP listener for the display page
type Server struct {
	httpServer *http.Server
}

func NewServer(addr string, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: constants.ReadHeaderTimeout,
		},
	}
}

// Serve handles requests on ln until ctx is cancelled, then shuts down gracefully
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Display page listening", "addr", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		logger.Info("Display page stopped")
		return nil
	case err := <-errCh:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
