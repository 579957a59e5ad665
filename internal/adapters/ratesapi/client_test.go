package ratesapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/smart_converter/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchLatest(t *testing.T) {
	var gotPath, gotAgent string
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"USD","date":"2025-03-01","rates":{"USD":1,"EUR":0.92,"PKR":278.5}}`))
	})

	c := NewClient(srv.URL+"/v4/latest/", "usd", WithRatePerSecond(0))
	rates, err := c.FetchLatest(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.RateTable{"USD": 1, "EUR": 0.92, "PKR": 278.5}, rates)
	assert.Equal(t, "/v4/latest/USD", gotPath)
	assert.Equal(t, userAgent, gotAgent)
}

func TestFetchLatest_ServerErrorWithoutRetries(t *testing.T) {
	var calls atomic.Int32
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	c := NewClient(srv.URL, "USD", WithRatePerSecond(0))
	_, err := c.FetchLatest(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchLatest_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rates":{"USD":1,"CNY":7.25}}`))
	})

	c := NewClient(srv.URL, "USD", WithRatePerSecond(0), WithRetries(3, time.Millisecond))
	rates, err := c.FetchLatest(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.RateTable{"USD": 1, "CNY": 7.25}, rates)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetchLatest_MalformedBodyIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`<html>oops</html>`))
	})

	c := NewClient(srv.URL, "USD", WithRatePerSecond(0), WithRetries(3, time.Millisecond))
	_, err := c.FetchLatest(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode latest rates")
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchLatest_EmptyRates(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"USD","rates":{}}`))
	})

	_, err := NewClient(srv.URL, "USD", WithRatePerSecond(0)).FetchLatest(context.Background())

	assert.ErrorContains(t, err, "no rates")
}

func TestFetchLatest_Timeout(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})

	c := NewClient(srv.URL, "USD", WithRatePerSecond(0), WithTimeout(50*time.Millisecond))
	_, err := c.FetchLatest(context.Background())

	assert.Error(t, err)
}

func TestFetchLatest_PacingHonoursContext(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"rates":{"USD":1}}`))
	})
	c := NewClient(srv.URL, "USD", WithRatePerSecond(1))

	_, err := c.FetchLatest(context.Background())
	require.NoError(t, err)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	_, err = c.FetchLatest(cancelled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 200*time.Millisecond)

	// the next slot is about a second away, so the deadline fires while pacing
	short, cancelShort := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancelShort()
	start = time.Now()
	_, err = c.FetchLatest(short)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 600*time.Millisecond)

	assert.Equal(t, int32(1), hits.Load())
}
