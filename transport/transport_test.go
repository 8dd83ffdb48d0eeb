package transport

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfacekit/a2ui/surface"
)

func TestChannelConnector(t *testing.T) {
	t.Run("delivers in order", func(t *testing.T) {
		c := NewChannel(4)
		c.Send(map[string]any{"n": 1.0})
		c.Send(map[string]any{"n": 2.0})

		first, err := c.Recv(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1.0, first["n"])

		second, err := c.Recv(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2.0, second["n"])
	})

	t.Run("close drains then reports EOF", func(t *testing.T) {
		c := NewChannel(4)
		c.Send(map[string]any{"n": 1.0})
		require.NoError(t, c.Close())

		payload, err := c.Recv(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1.0, payload["n"])

		_, err = c.Recv(context.Background())
		assert.ErrorIs(t, err, io.EOF)

		// Closing again is fine.
		assert.NoError(t, c.Close())
	})

	t.Run("context cancel unblocks", func(t *testing.T) {
		c := NewChannel(1)
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			_, err := c.Recv(ctx)
			done <- err
		}()
		cancel()
		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("Recv did not unblock on cancel")
		}
	})
}

func TestPump(t *testing.T) {
	t.Run("applies messages and skips unknown", func(t *testing.T) {
		reg := surface.NewRegistry(nil)
		events, cancel := reg.Events()
		defer cancel()

		c := NewChannel(8)
		c.Send(map[string]any{"mystery": map[string]any{}})
		c.Send(map[string]any{"beginRendering": map[string]any{
			"surfaceId": "main",
			"root":      "r",
		}})
		require.NoError(t, c.Close())

		err := Pump(context.Background(), c, reg, nil)
		require.NoError(t, err)

		select {
		case ev := <-events:
			assert.Equal(t, surface.SurfaceAdded, ev.Kind)
			assert.Equal(t, "main", ev.SurfaceID)
		default:
			t.Fatal("expected the valid message to be applied")
		}
	})

	t.Run("stops on closed registry", func(t *testing.T) {
		reg := surface.NewRegistry(nil)
		reg.Close()

		c := NewChannel(2)
		c.Send(map[string]any{"beginRendering": map[string]any{"surfaceId": "x"}})

		err := Pump(context.Background(), c, reg, nil)
		assert.NoError(t, err)
	})

	t.Run("context cancel ends the pump", func(t *testing.T) {
		reg := surface.NewRegistry(nil)
		c := NewChannel(1)
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() { done <- Pump(ctx, c, reg, nil) }()
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("pump did not stop on cancel")
		}
	})
}
