package worker

import (
	"context"
	"log"
	"time"

	"taskhub/realtime"
)

// PresenceWorker periodically pings every live websocket connection and
// closes the ones that stopped answering, so half-dead sockets do not
// linger in the hub between events.
type PresenceWorker struct {
	hub      *realtime.Hub
	logger   *log.Logger
	interval time.Duration
}

func NewPresenceWorker(hub *realtime.Hub, logger *log.Logger) *PresenceWorker {
	return &PresenceWorker{
		hub:      hub,
		logger:   logger,
		interval: 30 * time.Second,
	}
}

func (w *PresenceWorker) Start(ctx context.Context) {
	w.logger.Println("presence worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Println("presence worker stopping")
			return
		case <-ticker.C:
			if dropped := w.hub.PingAll(); dropped > 0 {
				w.logger.Printf("dropped %d dead connections", dropped)
			}
		}
	}
}
