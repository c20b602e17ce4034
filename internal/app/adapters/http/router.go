package http

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"viewermon/internal/app/adapters/feed"
	"viewermon/internal/app/adapters/http/handlers"
	"viewermon/internal/app/infrastructure/config"
	"viewermon/internal/app/ports"
	"viewermon/pkg/logger"
)

type Router struct {
	router   *gin.Engine
	handlers *handlers.Handlers

	log     logger.Logger
	manager *config.Manager
}

func NewRouter(log logger.Logger, manager *config.Manager, poller ports.PollerPort, streams []ports.Stream, f *feed.Feed) *Router {
	r := &Router{
		router:   gin.New(),
		handlers: handlers.New(log, manager, poller, streams),
		log:      log,
		manager:  manager,
	}
	r.router.Use(gin.Recovery())

	cfg := manager.Get()
	if cfg.AuthToken != "" {
		pprofGroup := r.router.Group("/", gin.BasicAuth(gin.Accounts{
			"admin": cfg.AuthToken,
		}))
		pprof.Register(pprofGroup)
	}

	r.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.router.GET("/status", r.handlers.StatusHandler)
	r.router.GET("/live", f.Handle)
	r.router.GET("/", r.handlers.IndexHandler)
	return r
}

func (r *Router) Run() error {
	return r.router.Run(r.manager.Get().ListenAddr)
}
