package registry

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"viewermon/internal/app/ports"
	"viewermon/pkg/logger"
)

func testLogger() logger.Logger {
	log := logger.New()
	log.SetLogLevel("fatal")
	return log
}

func writeInput(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "streams.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "Name,platform,URL\n"+
		"Alice,0,https://www.youtube.com/watch?v=vid123\n"+
		"Bob,1,https://www.twitch.tv/bobchan\n")

	reg, err := Load(testLogger(), path)
	require.NoError(t, err)

	streams := reg.Streams()
	require.Len(t, streams, 2)

	assert.Equal(t, "Alice", streams[0].Name)
	assert.Equal(t, ports.PlatformYouTube, streams[0].Platform)
	assert.Equal(t, "vid123", streams[0].Identifier)

	assert.Equal(t, "Bob", streams[1].Name)
	assert.Equal(t, ports.PlatformTwitch, streams[1].Platform)
	assert.Equal(t, "bobchan", streams[1].Identifier)
}

func TestLoadPreservesOrder(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "Name,platform,URL\n"+
		"C,1,https://twitch.tv/c\n"+
		"A,1,https://twitch.tv/a\n"+
		"B,1,https://twitch.tv/b\n")

	reg, err := Load(testLogger(), path)
	require.NoError(t, err)

	var names []string
	for _, s := range reg.Streams() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"C", "A", "B"}, names)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown platform code", content: "Name,platform,URL\nAlice,7,https://twitch.tv/alice\n"},
		{name: "non-numeric platform code", content: "Name,platform,URL\nAlice,twitch,https://twitch.tv/alice\n"},
		{name: "bad header", content: "Stream,kind,Link\nAlice,1,https://twitch.tv/alice\n"},
		{name: "empty file", content: ""},
		{name: "no streams", content: "Name,platform,URL\n"},
		{name: "empty name", content: "Name,platform,URL\n ,1,https://twitch.tv/alice\n"},
		{name: "bad youtube url", content: "Name,platform,URL\nAlice,0,https://example.com/watch?v=abc\n"},
		{name: "bad twitch url", content: "Name,platform,URL\nAlice,1,https://example.com/alice\n"},
		{name: "ragged row", content: "Name,platform,URL\nAlice,1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeInput(t, tt.content)
			_, err := Load(testLogger(), path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(testLogger(), filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestExtractVideoID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url     string
		want    string
		wantErr bool
	}{
		{url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{url: "https://www.youtube.com/watch?v=abc123&t=42s", want: "abc123"},
		{url: "https://youtu.be/abc123", want: "abc123"},
		{url: "https://youtu.be/abc123?si=xyz", want: "abc123"},
		{url: "https://vimeo.com/12345", wantErr: true},
		{url: "https://www.youtube.com/watch?v=", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()

			id, err := extractVideoID(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestExtractLogin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url     string
		want    string
		wantErr bool
	}{
		{url: "https://www.twitch.tv/bobchan", want: "bobchan"},
		{url: "https://twitch.tv/bobchan/videos", want: "bobchan"},
		{url: "https://twitch.tv/bobchan?referrer=raid", want: "bobchan"},
		{url: "https://twitch.tv/", wantErr: true},
		{url: "https://example.com/bobchan", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()

			login, err := extractLogin(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, login)
		})
	}
}
