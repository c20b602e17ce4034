package poller

import (
	"context"
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
	"log/slog"
	"sync"
	"time"
	"viewermon/internal/app/adapters/metrics"
	"viewermon/internal/app/ports"
	"viewermon/pkg/logger"
)

// Poller runs the collection loop: every interval it asks each platform
// client for the current viewer count of every registry stream in
// order, totals the platforms and hands one row to the recorder. A
// failed fetch yields 0 for that stream and never aborts the tick.
type Poller struct {
	log      logger.Logger
	streams  []ports.Stream
	clients  map[ports.Platform]ports.PlatformAPIPort
	recorder ports.RecorderPort
	feed     ports.FeedPort
	interval time.Duration

	// warn-log throttles for streams that fail tick after tick
	limiters []*rate.Limiter

	mu       sync.Mutex
	snapshot ports.TickSnapshot
}

func New(log logger.Logger, streams []ports.Stream, clients map[ports.Platform]ports.PlatformAPIPort,
	rec ports.RecorderPort, feed ports.FeedPort, interval time.Duration) *Poller {
	limiters := make([]*rate.Limiter, len(streams))
	for i := range streams {
		limiters[i] = rate.NewLimiter(rate.Every(10*time.Minute), 3)
	}

	return &Poller{
		log:      log,
		streams:  streams,
		clients:  clients,
		recorder: rec,
		feed:     feed,
		interval: interval,
		limiters: limiters,
	}
}

// Run blocks until ctx is cancelled. The current tick always finishes
// before Run returns, so the last row is never lost on shutdown.
func (p *Poller) Run(ctx context.Context) error {
	p.log.Info("Monitoring loop started",
		slog.Int("streams", len(p.streams)),
		slog.String("interval", p.interval.String()),
	)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		if err := p.tick(ctx); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			p.log.Info("Monitoring loop stopped")
			return nil
		case <-ticker.C:
		}
	}
}

func (p *Poller) tick(ctx context.Context) error {
	started := time.Now()
	row := ports.Row{
		Time:   started,
		Counts: make([]int, 0, len(p.streams)),
	}

	// A shutdown signal must not cut the tick in half: fetches run on a
	// detached context and the loop exits after the row is written.
	fetchCtx := context.WithoutCancel(ctx)

	for i, stream := range p.streams {
		count := p.collect(fetchCtx, i, stream)
		row.Counts = append(row.Counts, count)

		switch stream.Platform {
		case ports.PlatformYouTube:
			row.YouTubeTotal += count
		case ports.PlatformTwitch:
			row.TwitchTotal += count
		}

		metrics.StreamViewers.With(streamLabels(stream)).Set(float64(count))
	}

	if err := p.recorder.Append(row); err != nil {
		return fmt.Errorf("append row: %w", err)
	}

	metrics.PlatformViewers.With(prometheus.Labels{"platform": "youtube"}).Set(float64(row.YouTubeTotal))
	metrics.PlatformViewers.With(prometheus.Labels{"platform": "twitch"}).Set(float64(row.TwitchTotal))
	metrics.Ticks.Inc()
	metrics.RowsWritten.Inc()
	metrics.TickDuration.Observe(time.Since(started).Seconds())

	p.mu.Lock()
	p.snapshot = ports.TickSnapshot{
		LastTick:     started,
		Ticks:        p.snapshot.Ticks + 1,
		YouTubeTotal: row.YouTubeTotal,
		TwitchTotal:  row.TwitchTotal,
		GrandTotal:   row.YouTubeTotal + row.TwitchTotal,
	}
	p.mu.Unlock()

	if p.feed != nil {
		p.feed.Broadcast(row)
	}

	p.log.Info("Tick complete",
		slog.Int("youtube", row.YouTubeTotal),
		slog.Int("twitch", row.TwitchTotal),
		slog.Int("total", row.YouTubeTotal+row.TwitchTotal),
		slog.String("took", time.Since(started).String()),
	)
	return nil
}

func (p *Poller) collect(ctx context.Context, i int, stream ports.Stream) int {
	client, ok := p.clients[stream.Platform]
	if !ok {
		if p.limiters[i].Allow() {
			p.log.Warn("No client configured for platform",
				slog.String("stream", stream.Name),
				slog.String("platform", stream.Platform.String()),
			)
		}
		metrics.FetchErrors.With(streamLabels(stream)).Inc()
		return 0
	}

	count, err := client.ViewerCount(ctx, stream.Identifier)
	if err != nil {
		if p.limiters[i].Allow() {
			p.log.Warn("Failed to fetch viewer count",
				slog.String("stream", stream.Name),
				slog.String("platform", stream.Platform.String()),
				slog.String("error", err.Error()),
			)
		}
		metrics.FetchErrors.With(streamLabels(stream)).Inc()
		return 0
	}

	return count
}

func (p *Poller) Snapshot() ports.TickSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.snapshot
}

func streamLabels(stream ports.Stream) prometheus.Labels {
	return prometheus.Labels{
		"stream":   stream.Name,
		"platform": stream.Platform.String(),
	}
}
