package monitor

import (
	"time"
)

// Level is a log severity.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

func (l Level) rank() int {
	switch l {
	case LevelDebug:
		return 0
	case LevelInfo:
		return 1
	case LevelWarn:
		return 2
	case LevelError:
		return 3
	default:
		return 1
	}
}

// Enabled reports whether l passes the min threshold.
func (l Level) Enabled(min Level) bool {
	return l.rank() >= min.rank()
}

// LogContext carries the recognized attributes of a log call. Anything else
// goes into Fields.
type LogContext struct {
	Component  string
	Action     string
	UserID     string
	Resource   string
	ResourceID string
	Err        error
	Fields     map[string]string
}

// LogEntry is one emitted log record.
type LogEntry struct {
	Level      Level             `json:"level"`
	Message    string            `json:"message"`
	Timestamp  time.Time         `json:"timestamp"`
	Component  string            `json:"component,omitempty"`
	Action     string            `json:"action,omitempty"`
	UserID     string            `json:"user_id,omitempty"`
	Resource   string            `json:"resource,omitempty"`
	ResourceID string            `json:"resource_id,omitempty"`
	Error      string            `json:"error,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
	Report     *Report           `json:"report,omitempty"`

	err error
}

// Err returns the error attached to the entry, if any.
func (e LogEntry) Err() error {
	return e.err
}

func newEntry(now time.Time, level Level, msg string, lc LogContext) LogEntry {
	e := LogEntry{
		Level:      level,
		Message:    msg,
		Timestamp:  now,
		Component:  lc.Component,
		Action:     lc.Action,
		UserID:     lc.UserID,
		Resource:   lc.Resource,
		ResourceID: lc.ResourceID,
		Fields:     lc.Fields,
		err:        lc.Err,
	}
	if lc.Err != nil {
		e.Error = lc.Err.Error()
	}
	return e
}

// attrs flattens the entry into key/value pairs in a stable order.
func (e LogEntry) attrs() []any {
	kv := make([]any, 0, 12+2*len(e.Fields))
	add := func(k, v string) {
		if v != "" {
			kv = append(kv, k, v)
		}
	}
	add("component", e.Component)
	add("action", e.Action)
	add("user_id", e.UserID)
	add("resource", e.Resource)
	add("resource_id", e.ResourceID)
	add("error", e.Error)
	for _, k := range sortedKeys(e.Fields) {
		kv = append(kv, k, e.Fields[k])
	}
	return kv
}

// crumbData is the breadcrumb payload for a log call.
func (lc LogContext) crumbData() map[string]string {
	data := make(map[string]string, 6+len(lc.Fields))
	for k, v := range lc.Fields {
		data[k] = v
	}
	if lc.Component != "" {
		data["component"] = lc.Component
	}
	if lc.Action != "" {
		data["action"] = lc.Action
	}
	if lc.Resource != "" {
		data["resource"] = lc.Resource
	}
	if lc.ResourceID != "" {
		data["resource_id"] = lc.ResourceID
	}
	if lc.Err != nil {
		data["error"] = lc.Err.Error()
	}
	return data
}
