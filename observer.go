package xaction

import (
	"time"

	"github.com/trickstertwo/xlog"
)

// EventType enumerates registry lifecycle events for Observer pattern.
type EventType string

const (
	Registered EventType = "registered"
	Duplicate  EventType = "duplicate"
	Released   EventType = "released"
	Rejected   EventType = "rejected"
)

// Event carries registry telemetry for observers.
type Event struct {
	Type  EventType
	Tag   string
	Shape Shape
	At    time.Time
	Err   error
}

// ObserverFunc is an Adapter that lets a plain function satisfy Observer.
type ObserverFunc func(e Event)

func (f ObserverFunc) OnEvent(e Event) { f(e) }

// LoggingObserver is an Adapter that emits registry events via xlog.
type LoggingObserver struct {
	Logger *xlog.Logger
}

func (o LoggingObserver) OnEvent(e Event) {
	if o.Logger == nil {
		return
	}
	ev := o.Logger.With(
		xlog.Str("type", string(e.Type)),
		xlog.Str("tag", e.Tag),
		xlog.Str("shape", string(e.Shape)),
	)
	switch e.Type {
	case Duplicate, Rejected:
		ev.Warn().Err(e.Err).Msg("xaction event")
	default:
		ev.Debug().Msg("xaction event")
	}
}
