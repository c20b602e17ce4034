package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StreamViewers - текущий онлайн по стримам.
	StreamViewers = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "monitor_stream_viewers",
			Help: "Current number of live viewers per monitored stream",
		},
		[]string{"stream", "platform"},
	)

	// PlatformViewers - суммарный онлайн по платформам.
	PlatformViewers = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "monitor_platform_viewers",
			Help: "Current total number of live viewers per platform",
		},
		[]string{"platform"},
	)

	// FetchErrors - количество неудачных запросов по стримам.
	FetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "monitor_fetch_errors_total",
			Help: "Total number of failed viewer count fetches per stream",
		},
		[]string{"stream", "platform"},
	)

	// Ticks - количество завершённых тиков.
	Ticks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "monitor_ticks_total",
		Help: "Total number of completed poll ticks",
	})

	// RowsWritten - количество записанных строк CSV.
	RowsWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "monitor_rows_written_total",
		Help: "Total number of CSV rows appended",
	})

	// TickDuration - длительность тика.
	TickDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "monitor_tick_duration_seconds",
			Help:    "Time spent collecting all streams in one tick",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		},
	)
)
