// Package event contains the default EventDispatcher wiring.
package event

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"storefront/pkg/store/domain/service"
)

type LogDispatcher struct{}

// NewLogDispatcher returns a dispatcher that records every domain event as
// a structured log line. It never fails.
func NewLogDispatcher() *LogDispatcher {
	return &LogDispatcher{}
}

func (d *LogDispatcher) Dispatch(event service.Event) error {
	log.WithFields(log.Fields{
		"event":   event.Type(),
		"payload": fmt.Sprintf("%+v", event),
	}).Info("domain event")
	return nil
}
