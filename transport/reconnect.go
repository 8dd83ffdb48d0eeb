package transport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/surfacekit/a2ui/retry"
)

// DialFunc establishes one connection to the agent feed.
type DialFunc func(ctx context.Context) (Connector, error)

// Reconnecting wraps a dialer in a connector that re-establishes the
// link with backoff whenever a transient failure drops it. Clean ends
// (io.EOF) and permanent errors pass through; Close stops reconnecting.
func Reconnecting(dial DialFunc, cfg retry.Config, logger *slog.Logger) Connector {
	if logger == nil {
		logger = slog.Default()
	}
	return &reconnecting{dial: dial, cfg: cfg, logger: logger}
}

type reconnecting struct {
	dial   DialFunc
	cfg    retry.Config
	logger *slog.Logger

	mu     sync.Mutex
	conn   Connector
	closed bool
}

func (r *reconnecting) Recv(ctx context.Context) (map[string]any, error) {
	for {
		conn, err := r.current(ctx)
		if err != nil {
			return nil, err
		}

		payload, err := conn.Recv(ctx)
		if err == nil {
			return payload, nil
		}
		if errors.Is(err, io.EOF) || ctx.Err() != nil {
			return nil, err
		}
		if !retry.IsTransient(err) {
			return nil, err
		}

		r.logger.Warn("transport: feed dropped, reconnecting", "error", err)
		r.drop(conn)
	}
}

// current returns the live connection, dialing with backoff when there
// is none.
func (r *reconnecting) current(ctx context.Context) (Connector, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, io.EOF
	}
	if r.conn != nil {
		return r.conn, nil
	}
	conn, err := retry.Do(ctx, r.cfg, func() (Connector, error) {
		return r.dial(ctx)
	})
	if err != nil {
		return nil, err
	}
	r.conn = conn
	return conn, nil
}

// drop discards conn so the next Recv redials. A newer connection is
// left alone.
func (r *reconnecting) drop(conn Connector) {
	conn.Close()
	r.mu.Lock()
	if r.conn == conn {
		r.conn = nil
	}
	r.mu.Unlock()
}

func (r *reconnecting) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	if r.conn != nil {
		err := r.conn.Close()
		r.conn = nil
		return err
	}
	return nil
}
