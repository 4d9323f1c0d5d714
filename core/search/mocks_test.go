package search

import (
	"context"
	"io"
	"strings"
	"sync"

	"careercompass-api/core/domain"
	"careercompass-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	mu      sync.Mutex
	calls   []string
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.mu.Lock()
	m.calls = append(m.calls, url)
	m.mu.Unlock()
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return &mockResponse{statusCode: 200, headers: map[string]string{"Content-Type": "text/html"}}, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

func htmlResponse(body string) *mockResponse {
	return &mockResponse{
		statusCode: 200,
		body:       body,
		headers:    map[string]string{"Content-Type": "text/html; charset=utf-8"},
	}
}

// mockLogger records messages by level
type mockLogger struct {
	mu       sync.Mutex
	messages map[string][]string
}

func newMockLogger() *mockLogger {
	return &mockLogger{messages: make(map[string][]string)}
}

func (l *mockLogger) record(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages[level] = append(l.messages[level], msg)
}

func (l *mockLogger) Debug(msg string, _ map[string]interface{}) { l.record("debug", msg) }
func (l *mockLogger) Info(msg string, _ map[string]interface{})  { l.record("info", msg) }
func (l *mockLogger) Warn(msg string, _ map[string]interface{})  { l.record("warn", msg) }
func (l *mockLogger) Error(msg string, _ map[string]interface{}) { l.record("error", msg) }

// countingPacer never blocks and counts waits and completions
type countingPacer struct {
	waits int
	dones int
}

func (p *countingPacer) Wait(context.Context) error {
	p.waits++
	return nil
}

func (p *countingPacer) Done() {
	p.dones++
}

// stubExtractor returns canned results regardless of input
type stubExtractor struct {
	results []domain.LinkResult
	inputs  []string
}

func (s *stubExtractor) Extract(html string, limit int) []domain.LinkResult {
	s.inputs = append(s.inputs, html)
	if len(s.results) > limit {
		return s.results[:limit]
	}
	return s.results
}
