package monitor

import (
	"context"
	"maps"
	"slices"
)

// Sink receives every log entry that passes the level threshold.
type Sink interface {
	Write(ctx context.Context, e LogEntry) error
}

// BreadcrumbSink is implemented by sinks that also want breadcrumbs.
type BreadcrumbSink interface {
	AddBreadcrumb(ctx context.Context, b Breadcrumb) error
}

// Closer is implemented by sinks holding resources released on Dispose.
type Closer interface {
	Close(ctx context.Context) error
}

// Notification is the user-facing message raised by an error log.
type Notification struct {
	UserID  string
	Level   Level
	Message string
	Kind    ErrorKind
}

// Notifier delivers notifications to the affected user.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
