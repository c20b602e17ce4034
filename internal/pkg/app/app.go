package app

import (
	"context"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/net/proxy"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"viewermon/internal/app/adapters/feed"
	router "viewermon/internal/app/adapters/http"
	"viewermon/internal/app/adapters/metrics"
	"viewermon/internal/app/adapters/platform/twitch"
	"viewermon/internal/app/adapters/platform/youtube"
	"viewermon/internal/app/adapters/recorder"
	"viewermon/internal/app/adapters/registry"
	"viewermon/internal/app/domain/poller"
	"viewermon/internal/app/infrastructure/config"
	"viewermon/internal/app/ports"
	"viewermon/pkg/logger"
)

const configPath = "config.json"

func New() error {
	client := &http.Client{
		Timeout:   10 * time.Second,
		Transport: http.DefaultTransport,
	}
	log := logger.New()

	manager, err := config.New(configPath)
	if err != nil {
		log.Fatal("Error loading config", err)
	}

	cfg := manager.Get()
	log.SetLogLevel(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	if cfg.Proxy != nil && cfg.Proxy.Address != "" && cfg.Proxy.Port != 0 {
		dialer, err := proxy.SOCKS5("tcp", fmt.Sprintf("%s:%d", cfg.Proxy.Address, cfg.Proxy.Port), nil, proxy.Direct)
		if err != nil {
			return err
		}

		client.Transport = &http.Transport{
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			},
		}
	}

	prometheus.MustRegister(metrics.TickDuration)

	reg, err := registry.Load(log, cfg.InputFile)
	if err != nil {
		log.Fatal("Error loading input file", err)
	}
	streams := reg.Streams()

	clients := make(map[ports.Platform]ports.PlatformAPIPort)
	if cfg.YouTubeAPIKey != "" {
		clients[ports.PlatformYouTube] = youtube.New(logger.NewPrefixedLogger(log, "youtube"), manager, client)
	}
	if cfg.TwitchClientID != "" && cfg.TwitchAccessToken != "" {
		clients[ports.PlatformTwitch] = twitch.New(logger.NewPrefixedLogger(log, "twitch"), manager, client)
	}

	for _, stream := range streams {
		if _, ok := clients[stream.Platform]; !ok {
			log.Fatal("No credentials configured for platform required by input file", nil,
				"stream", stream.Name, "platform", stream.Platform.String())
		}
	}

	rec, err := recorder.New(log, cfg.OutputFile, streams)
	if err != nil {
		log.Fatal("Error opening output file", err)
	}
	defer rec.Close()

	f := feed.New(log)
	p := poller.New(log, streams, clients, rec, f, time.Duration(cfg.IntervalSeconds)*time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- p.Run(ctx)
	}()
	go func() {
		r := router.NewRouter(log, manager, p, streams, f)
		if err := r.Run(); err != nil {
			errCh <- err
		}
	}()

	log.Info("Monitor started", slog.String("input", cfg.InputFile), slog.String("output", cfg.OutputFile), slog.Int("interval_sec", cfg.IntervalSeconds))

	if err := <-errCh; err != nil {
		return err
	}
	log.Info("Monitor stopped")
	return nil
}
