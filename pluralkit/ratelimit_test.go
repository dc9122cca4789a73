package pluralkit

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterPacesRequests(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test")
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, systemJSON)
	}))
	defer server.Close()

	client, err := NewClient("", zerolog.Nop(),
		WithBaseURL(server.URL),
		WithRateLimit(2, 2),
	)
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()

	// the first two requests ride the burst allowance
	start := time.Now()
	for i := 0; i < 2; i++ {
		_, err := client.GetSystem(ctx, "exmpl")
		require.NoError(t, err)
	}
	assert.Less(t, time.Since(start), 500*time.Millisecond)

	// the third must wait for a replenished token, roughly half a second
	// at two tokens per second
	_, err = client.GetSystem(ctx, "exmpl")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 400*time.Millisecond)
}

func TestRateLimiterHonorsCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, systemJSON)
	}))
	defer server.Close()

	client, err := NewClient("", zerolog.Nop(),
		WithBaseURL(server.URL),
		WithRateLimit(1, 1),
	)
	require.NoError(t, err)
	defer client.Close()

	// drain the bucket
	_, err = client.GetSystem(context.Background(), "exmpl")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err = client.GetSystem(ctx, "exmpl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "waiting for request permit")
	assert.Less(t, time.Since(start), 500*time.Millisecond,
		"a cancelled wait must not block for the full refill interval")
}
