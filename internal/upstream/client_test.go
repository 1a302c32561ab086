package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketlens/internal/shape"
)

func TestRequestSuccess(t *testing.T) {
	var gotAuth, gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"ticker": "AAPL", "amount": 15000}]`))
	}))
	defer srv.Close()

	client := New(srv.URL, "test-key", 5*time.Second)
	query := url.Values{}
	query.Set("date", "2026-01-01")

	env := client.Request(context.Background(), http.MethodGet, "/beta/historical/congresstrading/AAPL", query, nil)

	require.False(t, env.IsError(), "unexpected error: %s", env.Err)
	assert.Equal(t, http.StatusOK, env.Status)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "/beta/historical/congresstrading/AAPL", gotPath)
	assert.Equal(t, "date=2026-01-01", gotQuery)

	arr, ok := env.Data.([]any)
	require.True(t, ok)
	require.Len(t, arr, 1)
	assert.Equal(t, []string{"ticker", "amount"}, func() []string {
		obj := arr[0].(*shape.Object)
		keys := make([]string, 0, obj.Len())
		for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
			keys = append(keys, pair.Key)
		}
		return keys
	}())
}

func TestRequestNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := New(srv.URL, "bad-key", 5*time.Second)

	env := client.Request(context.Background(), http.MethodGet, "/beta/live/lobbying", nil, nil)

	assert.True(t, env.IsError())
	assert.Equal(t, http.StatusUnauthorized, env.Status)
	assert.Equal(t, "invalid api key", env.Err)
	assert.Nil(t, env.Data)
}

func TestRequestTransportFailure(t *testing.T) {
	// Point at a closed server so the dial fails.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := New(srv.URL, "key", time.Second)

	env := client.Request(context.Background(), http.MethodGet, "/beta/live/lobbying", nil, nil)

	assert.True(t, env.IsError())
	assert.Equal(t, http.StatusInternalServerError, env.Status)
	assert.Contains(t, env.Err, "upstream request failed")
}

func TestRequestTimeoutResolvesToErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := New(srv.URL, "key", 20*time.Millisecond)

	env := client.Request(context.Background(), http.MethodGet, "/slow", nil, nil)

	assert.True(t, env.IsError())
	assert.Equal(t, http.StatusInternalServerError, env.Status)
}

func TestRequestUndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	client := New(srv.URL, "key", 5*time.Second)

	env := client.Request(context.Background(), http.MethodGet, "/bad", nil, nil)

	assert.True(t, env.IsError())
	assert.Equal(t, http.StatusOK, env.Status)
	assert.Contains(t, env.Err, "failed to decode response")
}

func TestRequestEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := New(srv.URL, "key", 5*time.Second)

	env := client.Request(context.Background(), http.MethodGet, "/empty", nil, nil)

	assert.False(t, env.IsError())
	assert.Nil(t, env.Data)
	assert.Equal(t, http.StatusNoContent, env.Status)
}

func TestSetAPIKey(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := New(srv.URL, "old-key", 5*time.Second)
	client.SetAPIKey("new-key")

	client.Request(context.Background(), http.MethodGet, "/x", nil, nil)
	assert.Equal(t, "Bearer new-key", gotAuth)
}
