package sim

import (
	"log"
	"reflect"
)

// EventLogger is a hook that prints one line per executed event.
type EventLogger struct {
	logger *log.Logger
}

// NewEventLogger returns a new EventLogger which will write into the logger.
func NewEventLogger(logger *log.Logger) *EventLogger {
	h := new(EventLogger)
	h.logger = logger
	return h
}

// Func writes the event information into the logger.
func (h *EventLogger) Func(ctx HookCtx) {
	if ctx.Pos != HookPosBeforeEvent {
		return
	}

	evt, ok := ctx.Item.(Event)
	if !ok {
		return
	}

	h.logger.Printf("t=%6.1f | %s", evt.Time(), describe(evt))
}

func describe(evt Event) string {
	if d, ok := evt.(Describer); ok {
		return d.Describe()
	}

	return reflect.TypeOf(evt).String()
}
