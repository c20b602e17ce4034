package config

type Config struct {
	LogLevel        string `json:"log_level"`
	GinMode         string `json:"gin_mode"`
	ListenAddr      string `json:"listen_addr"`
	AuthToken       string `json:"auth_token"`
	InputFile       string `json:"input_file"`
	OutputFile      string `json:"output_file"`
	IntervalSeconds int    `json:"interval_seconds"`

	YouTubeAPIKey     string `json:"youtube_api_key"`
	TwitchClientID    string `json:"twitch_client_id"`
	TwitchAccessToken string `json:"twitch_access_token"`

	Proxy *Proxy `json:"proxy,omitempty"`
}

type Proxy struct {
	Address string `json:"address"`
	Port    int    `json:"port"`
}
