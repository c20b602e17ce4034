package handlers

import (
	"time"
	"viewermon/internal/app/infrastructure/config"
	"viewermon/internal/app/ports"
	"viewermon/pkg/logger"
)

type Handlers struct {
	log     logger.Logger
	manager *config.Manager
	poller  ports.PollerPort
	streams []ports.Stream

	startTime time.Time
}

func New(log logger.Logger, manager *config.Manager, poller ports.PollerPort, streams []ports.Stream) *Handlers {
	return &Handlers{
		log:       log,
		manager:   manager,
		poller:    poller,
		streams:   streams,
		startTime: time.Now(),
	}
}
