// Package analytics provides the fire-and-forget event emitter the
// session service reports to. Failures are swallowed; analytics must
// never affect the calling operation.
package analytics

import (
	"fmt"

	"studysync/internal/pkg/logger"
)

// LogEmitter records analytics events to the application logger.
type LogEmitter struct {
	log logger.Logger
}

// NewLogEmitter creates an emitter that records events to the logger.
func NewLogEmitter(log logger.Logger) *LogEmitter {
	return &LogEmitter{log: log}
}

// Emit records the event. It never fails from the caller's point of view.
func (e *LogEmitter) Emit(event string, properties map[string]interface{}) {
	e.log.Info(fmt.Sprintf("EVENT: %s %v", event, properties))
}
