package monitor

import (
	"context"

	"encore.dev/rlog"
)

// Console mirrors entries to rlog.
type Console struct{}

func (Console) Write(_ context.Context, e LogEntry) error {
	kv := e.attrs()
	switch e.Level {
	case LevelDebug:
		rlog.Debug(e.Message, kv...)
	case LevelWarn:
		rlog.Warn(e.Message, kv...)
	case LevelError:
		if e.Report != nil {
			kv = append(kv,
				"session_id", e.Report.Session.ID,
				"breadcrumbs", len(e.Report.Breadcrumbs),
				"goroutines", e.Report.Runtime.Goroutines,
			)
		}
		rlog.Error(e.Message, kv...)
	default:
		rlog.Info(e.Message, kv...)
	}
	return nil
}
