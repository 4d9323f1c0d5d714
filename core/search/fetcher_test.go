package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"careercompass-api/core/interfaces"
)

func TestNewFetcher_DefaultTimeout(t *testing.T) {
	f := NewFetcher(&mockHTTPClient{}, nil, 0)

	assert.Equal(t, DefaultFetchTimeout, f.timeout)
}

func TestFetchHTML_Gating(t *testing.T) {
	tests := []struct {
		name     string
		resp     *mockResponse
		wantBody string
		wantOK   bool
	}{
		{
			name:     "200 html",
			resp:     htmlResponse("<html>ok</html>"),
			wantBody: "<html>ok</html>",
			wantOK:   true,
		},
		{
			name: "non-200 status",
			resp: &mockResponse{statusCode: 404, body: "<html></html>", headers: map[string]string{"Content-Type": "text/html"}},
		},
		{
			name: "201 is not accepted",
			resp: &mockResponse{statusCode: 201, body: "<html></html>", headers: map[string]string{"Content-Type": "text/html"}},
		},
		{
			name: "json content type",
			resp: &mockResponse{statusCode: 200, body: `{"a":1}`, headers: map[string]string{"Content-Type": "application/json"}},
		},
		{
			name: "missing content type",
			resp: &mockResponse{statusCode: 200, body: "<html></html>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockHTTPClient{
				getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
					return tt.resp, nil
				},
			}
			f := NewFetcher(client, newMockLogger(), time.Second)

			body, ok := f.FetchHTML(context.Background(), "https://www.udemy.com/courses/search/?q=go")

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestFetchHTML_TransportErrorIsAbsence(t *testing.T) {
	logger := newMockLogger()
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return nil, errors.New("dial tcp: connection refused")
		},
	}
	f := NewFetcher(client, logger, time.Second)

	body, ok := f.FetchHTML(context.Background(), "https://www.coursera.org/search?query=go")

	assert.False(t, ok)
	assert.Empty(t, body)
	assert.Equal(t, []string{"Fetch failed"}, logger.messages["warn"])
}

func TestFetchHTML_AppliesTimeout(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			deadline, ok := ctx.Deadline()
			if !ok {
				t.Error("fetch context should carry a deadline")
			} else if time.Until(deadline) > 50*time.Millisecond {
				t.Errorf("deadline too far away: %v", time.Until(deadline))
			}
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	f := NewFetcher(client, nil, 20*time.Millisecond)

	_, ok := f.FetchHTML(context.Background(), "https://www.udacity.com/catalog")

	assert.False(t, ok)
}

func TestFetchHTML_LogsEachAttempt(t *testing.T) {
	logger := newMockLogger()
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return htmlResponse("<p>hi</p>"), nil
		},
	}
	f := NewFetcher(client, logger, time.Second)

	f.FetchHTML(context.Background(), "https://a.example")
	f.FetchHTML(context.Background(), "https://b.example")

	assert.Len(t, logger.messages["info"], 2)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, client.calls)
}

func TestFetchHTML_NilClient(t *testing.T) {
	f := NewFetcher(nil, nil, time.Second)

	body, ok := f.FetchHTML(context.Background(), "https://www.udemy.com")

	assert.False(t, ok)
	assert.Empty(t, body)
}
