package feishu

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func botInfoHandler(hits *int, code int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		*hits++
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"code": code,
			"msg":  "ok",
			"bot": map[string]interface{}{
				"activate_status": 0,
				"app_name":        "ops-bot",
				"open_id":         "ou_bot",
				"avatar_url":      "https://example.com/a.png",
			},
		})
	}
}

func TestProbe_MemoizesResult(t *testing.T) {
	var hits int
	mux := http.NewServeMux()
	mux.HandleFunc("/open-apis/bot/v3/info", botInfoHandler(&hits, 0))
	client := newTestClient(t, mux, Options{ProbeTTL: time.Minute})

	info, cached, err := client.Probe(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, "ops-bot", info.AppName)
	assert.Equal(t, "ou_bot", info.OpenID)
	assert.Equal(t, 1, hits)

	info, cached, err = client.Probe(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, "ops-bot", info.AppName)
	assert.Equal(t, 1, hits, "second probe must be served from the memo")
}

func TestProbe_ForceBypassesMemo(t *testing.T) {
	var hits int
	mux := http.NewServeMux()
	mux.HandleFunc("/open-apis/bot/v3/info", botInfoHandler(&hits, 0))
	client := newTestClient(t, mux, Options{ProbeTTL: time.Minute})

	_, _, err := client.Probe(context.Background(), false)
	require.NoError(t, err)

	_, cached, err := client.Probe(context.Background(), true)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 2, hits)
}

func TestProbe_ExpiredEntryRefetches(t *testing.T) {
	var hits int
	mux := http.NewServeMux()
	mux.HandleFunc("/open-apis/bot/v3/info", botInfoHandler(&hits, 0))
	client := newTestClient(t, mux, Options{ProbeTTL: time.Minute})

	_, _, err := client.Probe(context.Background(), false)
	require.NoError(t, err)

	// Age the memo past its TTL.
	client.cacheLock.Lock()
	client.probeCache.fetchedAt = time.Now().Add(-2 * time.Minute)
	client.cacheLock.Unlock()

	_, cached, err := client.Probe(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 2, hits)
}

func TestProbe_SurfacesAPIError(t *testing.T) {
	var hits int
	mux := http.NewServeMux()
	mux.HandleFunc("/open-apis/bot/v3/info", botInfoHandler(&hits, 99991663))
	client := newTestClient(t, mux, Options{})

	_, _, err := client.Probe(context.Background(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "99991663")
}

func TestProbe_FailureIsNotMemoized(t *testing.T) {
	var hits int
	code := 99991663
	mux := http.NewServeMux()
	mux.HandleFunc("/open-apis/bot/v3/info", func(w http.ResponseWriter, r *http.Request) {
		botInfoHandler(&hits, code)(w, r)
		code = 0
	})
	client := newTestClient(t, mux, Options{ProbeTTL: time.Minute})

	_, _, err := client.Probe(context.Background(), false)
	require.Error(t, err)

	_, cached, err := client.Probe(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 2, hits)
}
