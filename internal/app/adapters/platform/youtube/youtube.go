package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"viewermon/internal/app/infrastructure/config"
	"viewermon/pkg/logger"
)

const defaultAPIURL = "https://www.googleapis.com/youtube/v3/videos"

// YouTube fetches concurrent viewer counts for live videos through the
// Data API v3. One attempt per call, no retries.
type YouTube struct {
	log    logger.Logger
	cfg    *config.Config
	client *http.Client
	apiURL string
}

func New(log logger.Logger, manager *config.Manager, client *http.Client) *YouTube {
	return &YouTube{
		log:    log,
		cfg:    manager.Get(),
		client: client,
		apiURL: defaultAPIURL,
	}
}

func (y *YouTube) ViewerCount(ctx context.Context, videoID string) (int, error) {
	params := url.Values{}
	params.Set("part", "liveStreamingDetails,snippet")
	params.Set("id", videoID)
	params.Set("key", y.cfg.YouTubeAPIKey)

	var videoResp VideoResponse
	if err := y.doRequest(ctx, y.apiURL+"?"+params.Encode(), &videoResp); err != nil {
		return 0, err
	}

	if len(videoResp.Items) == 0 {
		return 0, fmt.Errorf("video %s not found or not live", videoID)
	}

	viewers := videoResp.Items[0].LiveStreamingDetails.ConcurrentViewers
	if viewers == "" {
		return 0, errors.New("not a live stream or viewer count not available")
	}

	count, err := strconv.Atoi(viewers)
	if err != nil {
		return 0, fmt.Errorf("parse concurrentViewers: %w", err)
	}

	y.log.Debug("YouTube viewer count fetched", slog.String("videoID", videoID), slog.Int("viewers", count))
	return count, nil
}

func (y *YouTube) doRequest(ctx context.Context, reqURL string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := y.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("youtube returned %s: %s", resp.Status, string(raw))
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
