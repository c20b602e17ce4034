package registry

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"viewermon/internal/app/ports"
	"viewermon/pkg/logger"
)

// Registry holds the monitored streams, loaded once at startup from a
// CSV file with columns Name,platform,URL (platform 0 = YouTube,
// 1 = Twitch). Any malformed row aborts startup.
type Registry struct {
	log     logger.Logger
	streams []ports.Stream
}

func Load(log logger.Logger, path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse input file: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("input file is empty")
	}

	header := records[0]
	if len(header) < 3 || !strings.EqualFold(strings.TrimSpace(header[0]), "Name") ||
		!strings.EqualFold(strings.TrimSpace(header[1]), "platform") ||
		!strings.EqualFold(strings.TrimSpace(header[2]), "URL") {
		return nil, fmt.Errorf("input file header must be Name,platform,URL; got %v", header)
	}

	reg := &Registry{log: log}
	for i, rec := range records[1:] {
		line := i + 2

		name := strings.TrimSpace(rec[0])
		if name == "" {
			return nil, fmt.Errorf("line %d: empty stream name", line)
		}

		code, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("line %d: platform code is not a number: %w", line, err)
		}

		rawURL := strings.TrimSpace(rec[2])
		stream := ports.Stream{Name: name, URL: rawURL}

		switch ports.Platform(code) {
		case ports.PlatformYouTube:
			stream.Platform = ports.PlatformYouTube
			stream.Identifier, err = extractVideoID(rawURL)
		case ports.PlatformTwitch:
			stream.Platform = ports.PlatformTwitch
			stream.Identifier, err = extractLogin(rawURL)
		default:
			return nil, fmt.Errorf("line %d: unknown platform code %d for %s", line, code, name)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		reg.streams = append(reg.streams, stream)
		log.Info(fmt.Sprintf("Loaded %s stream", stream.Platform), slog.String("name", name), slog.String("identifier", stream.Identifier))
	}

	if len(reg.streams) == 0 {
		return nil, errors.New("input file contains no streams")
	}

	log.Info("Registry loaded", slog.Int("streams", len(reg.streams)))
	return reg, nil
}

func (r *Registry) Streams() []ports.Stream {
	return r.streams
}

func extractVideoID(rawURL string) (string, error) {
	var id string
	switch {
	case strings.Contains(rawURL, "youtube.com/watch?v="):
		id = strings.SplitN(rawURL, "v=", 2)[1]
		id = strings.SplitN(id, "&", 2)[0]
	case strings.Contains(rawURL, "youtu.be/"):
		id = strings.SplitN(rawURL, "youtu.be/", 2)[1]
		id = strings.SplitN(id, "?", 2)[0]
	}

	if id == "" {
		return "", fmt.Errorf("invalid YouTube URL format: %s", rawURL)
	}
	return id, nil
}

func extractLogin(rawURL string) (string, error) {
	if !strings.Contains(rawURL, "twitch.tv/") {
		return "", fmt.Errorf("invalid Twitch URL format: %s", rawURL)
	}

	login := strings.SplitN(rawURL, "twitch.tv/", 2)[1]
	login = strings.SplitN(login, "?", 2)[0]
	login = strings.SplitN(login, "/", 2)[0]
	if login == "" {
		return "", fmt.Errorf("invalid Twitch URL format: %s", rawURL)
	}

	return login, nil
}
