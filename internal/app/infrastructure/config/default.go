package config

func (m *Manager) GetDefault() *Config {
	return &Config{
		LogLevel:        "info",
		GinMode:         "release",
		ListenAddr:      ":8080",
		InputFile:       "streams.csv",
		OutputFile:      "viewers.csv",
		IntervalSeconds: 60,
	}
}
