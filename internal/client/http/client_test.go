package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/artvault/artvault-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
}

func fastRetry() *RetryConfig {
	return &RetryConfig{
		MaxRetries:           2,
		InitialInterval:      time.Millisecond,
		MaxInterval:          2 * time.Millisecond,
		Multiplier:           2,
		MaxElapsedTime:       time.Second,
		RetryableStatusCodes: []int{http.StatusServiceUnavailable},
	}
}

func TestHTTPClient_GetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "solana", r.URL.Query().Get("ids"))
		assert.Equal(t, "k", r.Header.Get("X-Key"))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(WithBaseURL(srv.URL), WithDefaultHeader("X-Key", "k"), WithRetryConfig(fastRetry()))

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, c.GetJSON(context.Background(), "simple/price", &out, WithQueryParam("ids", "solana")))
	assert.True(t, out.OK)
}

func TestHTTPClient_RetriesRetryableStatus(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(WithBaseURL(srv.URL), WithRetryConfig(fastRetry()))

	var out map[string]any
	require.NoError(t, c.GetJSON(context.Background(), "/", &out))
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`bad key`))
	}))
	defer srv.Close()

	c := NewHTTPClient(WithBaseURL(srv.URL), WithRetryConfig(nil))

	var out map[string]any
	err := c.GetJSON(context.Background(), "/", &out)
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "bad key", httpErr.Body)
}

func TestHTTPClient_InvalidPathWithoutBaseURL(t *testing.T) {
	c := NewHTTPClient()
	_, err := c.DoRequest(context.Background(), http.MethodGet, "not a url", nil)
	assert.Error(t, err)
}
