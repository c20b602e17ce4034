package config

import (
	"errors"
	"fmt"
)

func (m *Manager) validate(cfg *Config) error {
	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	if cfg.LogLevel != "" && !validLevels[cfg.LogLevel] {
		return fmt.Errorf("log_level must be one of trace, debug, info, warn, error; got %s", cfg.LogLevel)
	}

	if cfg.GinMode == "" {
		cfg.GinMode = "release"
	}
	if cfg.GinMode != "debug" && cfg.GinMode != "release" && cfg.GinMode != "test" {
		return fmt.Errorf("gin_mode must be debug, release or test; got %s", cfg.GinMode)
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}

	if cfg.InputFile == "" {
		return errors.New("input_file is required")
	}
	if cfg.OutputFile == "" {
		return errors.New("output_file is required")
	}

	if cfg.IntervalSeconds == 0 {
		cfg.IntervalSeconds = 60
	}
	if cfg.IntervalSeconds < 5 {
		return fmt.Errorf("interval_seconds must be at least 5; got %d", cfg.IntervalSeconds)
	}

	if cfg.YouTubeAPIKey == "" && (cfg.TwitchClientID == "" || cfg.TwitchAccessToken == "") {
		return errors.New("credentials for at least one platform are required: youtube_api_key or twitch_client_id + twitch_access_token")
	}
	if (cfg.TwitchClientID == "") != (cfg.TwitchAccessToken == "") {
		return errors.New("twitch_client_id and twitch_access_token must both be set or both be empty")
	}

	if cfg.Proxy != nil && (cfg.Proxy.Address == "" || cfg.Proxy.Port == 0) {
		return errors.New("proxy.address and proxy.port must both be set when proxy is present")
	}

	return nil
}
