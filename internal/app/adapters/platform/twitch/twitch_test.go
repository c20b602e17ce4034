package twitch

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
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

func testTwitch(t *testing.T, handler http.Handler) *Twitch {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logger.New()
	log.SetLogLevel("fatal")

	tw := New(log, testManager(t), srv.Client())
	tw.usersURL = srv.URL + "/helix/users"
	tw.streamsURL = srv.URL + "/helix/streams"
	return tw
}

func TestViewerCount(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/helix/users", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "cid", r.Header.Get("Client-Id"))
		assert.Equal(t, "bobchan", r.URL.Query().Get("login"))

		_, _ = w.Write([]byte(`{"data":[{"id":"42","login":"bobchan"}]}`))
	})
	mux.HandleFunc("/helix/streams", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "42", r.URL.Query().Get("user_id"))

		_, _ = w.Write([]byte(`{"data":[{"id":"1","user_id":"42","user_login":"bobchan","viewer_count":75}]}`))
	})

	tw := testTwitch(t, mux)

	count, err := tw.ViewerCount(context.Background(), "bobchan")
	require.NoError(t, err)
	assert.Equal(t, 75, count)
}

func TestViewerCountMemoizesUserID(t *testing.T) {
	t.Parallel()

	var userCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/helix/users", func(w http.ResponseWriter, r *http.Request) {
		userCalls.Add(1)
		_, _ = w.Write([]byte(`{"data":[{"id":"42","login":"bobchan"}]}`))
	})
	mux.HandleFunc("/helix/streams", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"viewer_count":10}]}`))
	})

	tw := testTwitch(t, mux)

	for range 3 {
		_, err := tw.ViewerCount(context.Background(), "bobchan")
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), userCalls.Load())
}

func TestViewerCountNotLive(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/helix/users", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"id":"42"}]}`))
	})
	mux.HandleFunc("/helix/streams", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	tw := testTwitch(t, mux)

	_, err := tw.ViewerCount(context.Background(), "bobchan")
	assert.ErrorContains(t, err, "not live")
}

func TestViewerCountUserNotFound(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/helix/users", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	tw := testTwitch(t, mux)

	_, err := tw.ViewerCount(context.Background(), "ghost")
	assert.ErrorContains(t, err, "not found")
}

func TestViewerCountUnauthorized(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/helix/users", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Unauthorized","status":401,"message":"Invalid OAuth token"}`, http.StatusUnauthorized)
	})

	tw := testTwitch(t, mux)

	_, err := tw.ViewerCount(context.Background(), "bobchan")
	assert.ErrorContains(t, err, "401")
}
