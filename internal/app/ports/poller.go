package ports

import (
	"context"
	"time"
)

// TickSnapshot is the poller's view of its most recent tick, served by
// the status endpoint.
type TickSnapshot struct {
	LastTick     time.Time `json:"last_tick"`
	Ticks        int64     `json:"ticks"`
	YouTubeTotal int       `json:"youtube"`
	TwitchTotal  int       `json:"twitch"`
	GrandTotal   int       `json:"total"`
}

type PollerPort interface {
	Run(ctx context.Context) error
	Snapshot() TickSnapshot
}
