package http_test

import (
	"context"
	"testing"
	"time"

	wshttp "github.com/fwojciec/wordslide/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostLimiter(t *testing.T) {
	t.Parallel()

	t.Run("allows immediate request when under limit", func(t *testing.T) {
		t.Parallel()

		limiter := wshttp.NewHostLimiter(10)

		start := time.Now()
		err := limiter.Wait(context.Background(), "www.cyberhymnal.org")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "first request should be immediate")
	})

	t.Run("paces requests to the same host", func(t *testing.T) {
		t.Parallel()

		limiter := wshttp.NewHostLimiter(10) // 100ms between requests

		require.NoError(t, limiter.Wait(context.Background(), "www.cyberhymnal.org"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "www.cyberhymnal.org")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "should wait for rate limit")
	})

	t.Run("different hosts have independent limits", func(t *testing.T) {
		t.Parallel()

		limiter := wshttp.NewHostLimiter(10)

		require.NoError(t, limiter.Wait(context.Background(), "www.cyberhymnal.org"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "www.igracemusic.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "different host should not wait")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := wshttp.NewHostLimiter(1)
		require.NoError(t, limiter.Wait(context.Background(), "www.cyberhymnal.org"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := limiter.Wait(ctx, "www.cyberhymnal.org")
		require.Error(t, err)
	})
}
