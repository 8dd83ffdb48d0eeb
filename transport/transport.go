// Package transport feeds the A2UI engine. A [Connector] produces
// decoded message envelopes from some agent link - SSE, websocket, or an
// in-process channel - and [Pump] drains it into a surface registry,
// logging and skipping unrecognized envelopes.
//
// The engine core never sees raw bytes: connectors own framing, and the
// registry receives one decoded JSON object at a time.
package transport

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/surfacekit/a2ui"
	"github.com/surfacekit/a2ui/surface"
)

// Connector supplies a sequential feed of decoded message envelopes.
type Connector interface {
	// Recv blocks until the next envelope arrives. It returns io.EOF when
	// the feed ends cleanly.
	Recv(ctx context.Context) (map[string]any, error)

	// Close releases the connection. Recv calls unblock with an error.
	Close() error
}

// Pump drains a connector into a registry until the context is canceled
// or the feed ends. Unrecognized envelopes are logged and skipped per the
// protocol's log-and-continue policy; a closed registry stops the pump.
// A clean end of feed returns nil.
func Pump(ctx context.Context, conn Connector, reg *surface.Registry, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	for {
		payload, err := conn.Recv(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		if err := reg.HandleMessage(payload); err != nil {
			if errors.Is(err, surface.ErrClosed) {
				return nil
			}
			var unknown *a2ui.UnknownMessageTypeError
			if errors.As(err, &unknown) {
				logger.Warn("transport: skipping unknown message type",
					"payload", unknown.PayloadJSON())
				continue
			}
			return err
		}
	}
}

// Channel is an in-process connector backed by a Go channel. It is the
// connector used in tests and by hosts that decode envelopes themselves.
type Channel struct {
	ch     chan map[string]any
	cancel chan struct{}
}

// NewChannel creates a channel connector with a buffered feed.
func NewChannel(capacity int) *Channel {
	return &Channel{
		ch:     make(chan map[string]any, capacity),
		cancel: make(chan struct{}),
	}
}

// Send enqueues an envelope for Recv. It blocks when the buffer is full.
func (c *Channel) Send(payload map[string]any) {
	select {
	case c.ch <- payload:
	case <-c.cancel:
	}
}

// Recv returns the next envelope, or io.EOF after Close.
func (c *Channel) Recv(ctx context.Context) (map[string]any, error) {
	select {
	case payload := <-c.ch:
		return payload, nil
	case <-c.cancel:
		// Drain envelopes that were queued before close.
		select {
		case payload := <-c.ch:
			return payload, nil
		default:
			return nil, io.EOF
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close ends the feed. Pending envelopes are still delivered.
func (c *Channel) Close() error {
	select {
	case <-c.cancel:
	default:
		close(c.cancel)
	}
	return nil
}
