package retry

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

type statusError struct {
	code int
}

func (e *statusError) Error() string   { return fmt.Sprintf("http %d", e.code) }
func (e *statusError) StatusCode() int { return e.code }

func TestIsTransientStatusCodes(t *testing.T) {
	tests := []struct {
		code     int
		expected bool
	}{
		{429, true},
		{500, true},
		{502, true},
		{503, true},
		{400, false},
		{401, false},
		{404, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, IsTransient(&statusError{code: tt.code}))
		})
	}
}

func TestIsTransientNetworkErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil", nil, false},
		{"timeout", &mockTransientError{msg: "i/o timeout"}, true},
		{"connection refused", syscall.ECONNREFUSED, true},
		{"connection reset", syscall.ECONNRESET, true},
		{"url timeout", &url.Error{Op: "Get", URL: "http://agent", Err: &mockTransientError{msg: "timeout"}}, true},
		{"temporary dns", &net.DNSError{IsTemporary: true}, true},
		{"permanent dns", &net.DNSError{}, false},
		{"plain error", errors.New("parse failure"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsTransient(tt.err))
		})
	}
}

func TestIsTransientMessagePatterns(t *testing.T) {
	tests := []struct {
		msg      string
		expected bool
	}{
		{"dial tcp: connection refused", true},
		{"upstream returned service unavailable", true},
		{"502 bad gateway", true},
		{"invalid payload shape", false},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsTransient(errors.New(tt.msg)))
		})
	}
}

func TestIsTransientWrapped(t *testing.T) {
	wrapped := fmt.Errorf("recv: %w", &statusError{code: 503})
	assert.True(t, IsTransient(wrapped))
}
