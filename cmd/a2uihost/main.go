// Command a2uihost connects an A2UI surface registry to a remote agent
// and republishes surface lifecycle as an AG-UI event stream over SSE.
//
// It is the reference host: the agent link (SSE or websocket) feeds the
// registry, and any number of frontends can watch /events for lifecycle
// and data snapshots. It deliberately renders nothing - rendering belongs
// to whatever consumes the stream.
//
// Configuration is via environment variables:
//
//	A2UI_AGENT_URL        - Agent message stream URL (required)
//	A2UI_TRANSPORT        - Link type: sse or ws (default: sse)
//	A2UI_PORT             - Server port (default: 8080)
//	A2UI_LOG_LEVEL        - debug, info, warn, error (default: info)
//	A2UI_SHUTDOWN_TIMEOUT - Graceful shutdown timeout (default: 30s)
//
// Usage:
//
//	A2UI_AGENT_URL=http://localhost:9000/stream go run ./cmd/a2uihost
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/surfacekit/a2ui/retry"
	"github.com/surfacekit/a2ui/surface"
	"github.com/surfacekit/a2ui/transport"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	reg := surface.NewRegistry(logger)
	defer reg.Close()

	conn := transport.Reconnecting(dialAgent(cfg), retry.DefaultConfig(), logger)
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pumpDone := make(chan error, 1)
	go func() {
		pumpDone <- transport.Pump(ctx, conn, reg, logger)
	}()

	mux := http.NewServeMux()
	mux.Handle("/events", NewEventsHandler(reg, logger))
	mux.HandleFunc("/health", healthHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // SSE needs no write timeout
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-sigCh:
			logger.Info("shutting down")
		case err := <-pumpDone:
			if err != nil {
				logger.Error("agent link failed", "error", err)
			} else {
				logger.Info("agent link closed")
			}
		}
		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		server.Shutdown(shutdownCtx)
	}()

	logger.Info("a2ui host listening",
		"port", cfg.Port,
		"agent_url", cfg.AgentURL,
		"transport", cfg.Transport)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func dialAgent(cfg *Config) transport.DialFunc {
	if cfg.Transport == "ws" {
		return func(ctx context.Context) (transport.Connector, error) {
			dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return transport.DialWebSocket(dialCtx, cfg.AgentURL)
		}
	}
	return func(ctx context.Context) (transport.Connector, error) {
		return transport.NewSSE(cfg.AgentURL), nil
	}
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"status":"ok"}`)
}
