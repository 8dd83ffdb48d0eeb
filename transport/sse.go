package transport

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// SSE is a connector reading Server-Sent Events from an agent endpoint.
// Each "data:" line is decoded as one JSON message envelope; other SSE
// fields (event names, ids, comments) are ignored.
type SSE struct {
	url    string
	client *http.Client

	mu     sync.Mutex
	body   io.ReadCloser
	reader *bufio.Reader
}

// SSEOption configures an SSE connector.
type SSEOption func(*SSE)

// WithHTTPClient sets the HTTP client used for the stream request.
func WithHTTPClient(client *http.Client) SSEOption {
	return func(s *SSE) {
		s.client = client
	}
}

// NewSSE creates an SSE connector for the given stream URL. The
// connection is established lazily on the first Recv.
func NewSSE(url string, opts ...SSEOption) *SSE {
	s := &SSE{
		url:    url,
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SSE) connect(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return fmt.Errorf("transport: sse stream returned status %d", resp.StatusCode)
	}
	s.body = resp.Body
	s.reader = bufio.NewReader(resp.Body)
	return nil
}

// Recv returns the next decoded envelope from the stream. Lines that are
// not "data:" fields, and data payloads that are not JSON objects, are
// skipped. A server-side close surfaces as io.EOF.
func (s *SSE) Recv(ctx context.Context) (map[string]any, error) {
	s.mu.Lock()
	if s.reader == nil {
		if err := s.connect(ctx); err != nil {
			s.mu.Unlock()
			return nil, err
		}
	}
	reader := s.reader
	s.mu.Unlock()

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		data, ok := strings.CutPrefix(line, "data:")
		if !ok {
			continue
		}
		data = strings.TrimSpace(data)
		if data == "" {
			continue
		}
		var payload map[string]any
		if err := json.Unmarshal([]byte(data), &payload); err != nil {
			continue
		}
		return payload, nil
	}
}

// Close terminates the stream.
func (s *SSE) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.body != nil {
		err := s.body.Close()
		s.body = nil
		s.reader = nil
		return err
	}
	return nil
}
