package mcpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"

	"github.com/tfstool/tfsmcp/internal/config"
)

// shutdownTimeout bounds how long in-flight requests get on shutdown.
const shutdownTimeout = 10 * time.Second

// serveHTTP runs the MCP server behind an HTTP listener using either the
// streamable or the SSE handler. It blocks until the context is cancelled or
// the listener fails.
func (s *Server) serveHTTP(ctx context.Context, server *mcp.Server) error {
	var handler http.Handler
	switch s.cfg.Transport {
	case config.TransportSSE:
		handler = mcp.NewSSEHandler(func(_ *http.Request) *mcp.Server {
			return server
		}, nil)
	default:
		handler = mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
			return server
		}, nil)
	}

	httpServer := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: handler,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("mcp server listening",
			"transport", s.cfg.Transport,
			"addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
