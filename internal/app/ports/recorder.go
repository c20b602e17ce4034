package ports

import "time"

// Row is one tick's result. Counts follow registry order; a stream whose
// fetch failed carries 0.
type Row struct {
	Time         time.Time `json:"time"`
	YouTubeTotal int       `json:"youtube"`
	TwitchTotal  int       `json:"twitch"`
	Counts       []int     `json:"counts"`
}

type RecorderPort interface {
	Append(row Row) error
	Close() error
}
