package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventRunStart    EventType = "run_start"
	EventRunComplete EventType = "run_complete"
	EventRunFailed   EventType = "run_failed"
)

// RunEvent describes one enrichment run.
type RunEvent struct {
	Timestamp  time.Time     `json:"timestamp"`
	Type       EventType     `json:"type"`
	Taxonomy   string        `json:"taxonomy,omitempty"`
	Nodes      int           `json:"nodes"`
	Declared   int           `json:"declared"`
	ScopeRoots int           `json:"scope_roots"`
	Orphans    int           `json:"orphans,omitempty"`
	Inherited  int           `json:"inherited,omitempty"` // Marker ids gained from ancestors
	Duration   time.Duration `json:"duration,omitempty"`
	Err        error         `json:"-"`
}

// LifecycleHooks defines callbacks for enrichment observability.
type LifecycleHooks struct {
	OnRunStart    func(context.Context, *RunEvent)
	OnRunComplete func(context.Context, *RunEvent)
	OnRunFailed   func(context.Context, *RunEvent)
}
