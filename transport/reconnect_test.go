package transport

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfacekit/a2ui/retry"
)

// flakyConnector errors once, then serves from a channel.
type flakyConnector struct {
	failWith error
	failed   bool
	inner    *Channel
}

func (f *flakyConnector) Recv(ctx context.Context) (map[string]any, error) {
	if !f.failed {
		f.failed = true
		return nil, f.failWith
	}
	return f.inner.Recv(ctx)
}

func (f *flakyConnector) Close() error { return f.inner.Close() }

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

var _ net.Error = timeoutError{}

func TestReconnectingRedialsOnTransient(t *testing.T) {
	inner := NewChannel(2)
	inner.Send(map[string]any{"n": 1.0})

	dials := 0
	conn := Reconnecting(func(ctx context.Context) (Connector, error) {
		dials++
		return &flakyConnector{failWith: timeoutError{}, inner: inner}, nil
	}, retry.Disabled(), nil)
	defer conn.Close()

	// The first Recv hits the transient failure and redials.
	payload, err := conn.Recv(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1.0, payload["n"])
	assert.Equal(t, 2, dials)
}

func TestReconnectingPassesPermanentThrough(t *testing.T) {
	permanent := errors.New("bad payload")
	inner := NewChannel(1)

	conn := Reconnecting(func(ctx context.Context) (Connector, error) {
		return &flakyConnector{failWith: permanent, inner: inner}, nil
	}, retry.Disabled(), nil)
	defer conn.Close()

	_, err := conn.Recv(context.Background())
	assert.ErrorIs(t, err, permanent)
}

func TestReconnectingPassesEOFThrough(t *testing.T) {
	inner := NewChannel(1)
	require.NoError(t, inner.Close())

	conn := Reconnecting(func(ctx context.Context) (Connector, error) {
		return inner, nil
	}, retry.Disabled(), nil)
	defer conn.Close()

	_, err := conn.Recv(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestReconnectingClose(t *testing.T) {
	conn := Reconnecting(func(ctx context.Context) (Connector, error) {
		t.Fatal("dial after close")
		return nil, nil
	}, retry.Disabled(), nil)

	require.NoError(t, conn.Close())
	_, err := conn.Recv(context.Background())
	assert.ErrorIs(t, err, io.EOF)

	// Closing twice is fine.
	assert.NoError(t, conn.Close())
}

func TestReconnectingDialFailure(t *testing.T) {
	permanent := errors.New("no such host configured")
	conn := Reconnecting(func(ctx context.Context) (Connector, error) {
		return nil, permanent
	}, retry.Disabled(), nil)
	defer conn.Close()

	_, err := conn.Recv(context.Background())
	assert.ErrorIs(t, err, permanent)
}
