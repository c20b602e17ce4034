package twitch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"viewermon/internal/app/infrastructure/config"
	"viewermon/internal/app/infrastructure/storage"
	"viewermon/pkg/logger"
)

const (
	defaultUsersURL   = "https://api.twitch.tv/helix/users"
	defaultStreamsURL = "https://api.twitch.tv/helix/streams"
)

// Twitch fetches live viewer counts through the Helix API. A login is
// first resolved to a user ID (memoized, user IDs never change), then
// /helix/streams is queried. One attempt per call, no retries.
type Twitch struct {
	log    logger.Logger
	cfg    *config.Config
	client *http.Client
	userID *storage.Cache[string]

	usersURL   string
	streamsURL string
}

func New(log logger.Logger, manager *config.Manager, client *http.Client) *Twitch {
	return &Twitch{
		log:        log,
		cfg:        manager.Get(),
		client:     client,
		userID:     storage.NewCache[string](16, 0),
		usersURL:   defaultUsersURL,
		streamsURL: defaultStreamsURL,
	}
}

func (t *Twitch) ViewerCount(ctx context.Context, login string) (int, error) {
	userID, err := t.resolveUserID(ctx, login)
	if err != nil {
		return 0, err
	}

	params := url.Values{}
	params.Set("user_id", userID)

	var streamResp StreamResponse
	if err := t.doTwitchRequest(ctx, t.streamsURL+"?"+params.Encode(), &streamResp); err != nil {
		return 0, err
	}

	if len(streamResp.Data) == 0 {
		return 0, fmt.Errorf("stream %s not live", login)
	}

	count := streamResp.Data[0].ViewerCount
	t.log.Debug("Twitch viewer count fetched", slog.String("login", login), slog.Int("viewers", count))
	return count, nil
}

func (t *Twitch) resolveUserID(ctx context.Context, login string) (string, error) {
	if id, ok := t.userID.Get(login); ok {
		return id, nil
	}

	params := url.Values{}
	params.Set("login", login)

	var userResp UserResponse
	if err := t.doTwitchRequest(ctx, t.usersURL+"?"+params.Encode(), &userResp); err != nil {
		return "", err
	}

	if len(userResp.Data) == 0 {
		return "", fmt.Errorf("user %s not found", login)
	}

	id := userResp.Data[0].ID
	t.userID.Set(login, id)
	t.log.Debug("Resolved Twitch user", slog.String("login", login), slog.String("userID", id))
	return id, nil
}

func (t *Twitch) doTwitchRequest(ctx context.Context, reqURL string, target interface{}) error {
	t.log.Trace("Preparing Twitch request", slog.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+t.cfg.TwitchAccessToken)
	req.Header.Set("Client-Id", t.cfg.TwitchClientID)

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("twitch returned %s: %s", resp.Status, string(raw))
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
