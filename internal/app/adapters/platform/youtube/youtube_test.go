package youtube

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"viewermon/internal/app/infrastructure/config"
	"viewermon/pkg/logger"
)

func testManager(t *testing.T) *config.Manager {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	raw := `{"input_file":"streams.csv","output_file":"out.csv","interval_seconds":60,` +
		`"youtube_api_key":"test-key","twitch_client_id":"cid","twitch_access_token":"tok"}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	m, err := config.New(path)
	require.NoError(t, err)
	return m
}

func testClient(t *testing.T, handler http.HandlerFunc) *YouTube {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logger.New()
	log.SetLogLevel("fatal")

	y := New(log, testManager(t), srv.Client())
	y.apiURL = srv.URL
	return y
}

func TestViewerCount(t *testing.T) {
	t.Parallel()

	y := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "vid123", r.URL.Query().Get("id"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "liveStreamingDetails,snippet", r.URL.Query().Get("part"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"id":"vid123","liveStreamingDetails":{"concurrentViewers":"150"}}]}`))
	})

	count, err := y.ViewerCount(context.Background(), "vid123")
	require.NoError(t, err)
	assert.Equal(t, 150, count)
}

func TestViewerCountNotFound(t *testing.T) {
	t.Parallel()

	y := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[]}`))
	})

	_, err := y.ViewerCount(context.Background(), "gone")
	assert.ErrorContains(t, err, "not found or not live")
}

func TestViewerCountNotLive(t *testing.T) {
	t.Parallel()

	y := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[{"id":"vid123","liveStreamingDetails":{}}]}`))
	})

	_, err := y.ViewerCount(context.Background(), "vid123")
	assert.Error(t, err)
}

func TestViewerCountHTTPError(t *testing.T) {
	t.Parallel()

	y := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":403,"message":"quota exceeded"}}`, http.StatusForbidden)
	})

	_, err := y.ViewerCount(context.Background(), "vid123")
	assert.ErrorContains(t, err, "403")
}

func TestViewerCountMalformedResponse(t *testing.T) {
	t.Parallel()

	y := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[{`))
	})

	_, err := y.ViewerCount(context.Background(), "vid123")
	assert.Error(t, err)
}
