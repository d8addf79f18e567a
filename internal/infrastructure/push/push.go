// Package push delivers fired reminder notifications to the user's
// device channel.
package push

import (
	"fmt"

	"studysync/internal/pkg/logger"
)

// Pusher delivers a fired notification. Implementations must be safe
// for concurrent use; scheduled jobs fire from the cron runner.
type Pusher interface {
	Push(title, body string, metadata map[string]string) error
}

type logPusher struct {
	log logger.Logger
}

// NewLogPusher creates a Pusher that only logs deliveries. Used when no
// push channel is configured.
func NewLogPusher(log logger.Logger) Pusher {
	return &logPusher{log: log}
}

func (p *logPusher) Push(title, body string, metadata map[string]string) error {
	p.log.Info(fmt.Sprintf("NOTIFY: %s - %s (meta: %v)", title, body, metadata))
	return nil
}
