// Package monitor is the logging and monitoring pipeline: leveled logs,
// breadcrumbs, session and performance tracking, error capture and
// forwarding. Nothing in it panics or returns errors to callers; sink
// failures are dropped.
package monitor

import (
	"context"
	"fmt"
	"maps"
	"runtime/debug"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// SlowPageLoad is the page-load time above which a warning is logged.
	SlowPageLoad = 3000 * time.Millisecond

	DefaultReportBreadcrumbs = 20

	MetricPageLoad = "page_load"
)

// Logger is the leveled logging surface used across the service.
type Logger interface {
	Debug(ctx context.Context, msg string, lc LogContext)
	Info(ctx context.Context, msg string, lc LogContext)
	Warn(ctx context.Context, msg string, lc LogContext)
	Error(ctx context.Context, msg string, lc LogContext)
}

// Options configures a Monitor.
type Options struct {
	Environment string
	Release     string
	// MinLevel drops entries below it. Errors are never dropped.
	MinLevel Level
	// BreadcrumbCapacity bounds the breadcrumb FIFO.
	BreadcrumbCapacity int
	// ReportBreadcrumbs is how many recent breadcrumbs a captured error carries.
	ReportBreadcrumbs int
	Sinks             []Sink
	Notifier          Notifier
	Now               func() time.Time
}

// Monitor implements Logger.
type Monitor struct {
	env               string
	release           string
	minLevel          Level
	reportBreadcrumbs int
	sinks             []Sink
	notifier          Notifier
	now               func() time.Time
	crumbs            *Breadcrumbs

	mu          sync.Mutex
	initialized bool
	session     Session
	user        *User
	performance map[string]float64
}

var _ Logger = (*Monitor)(nil)

func New(opts Options) *Monitor {
	m := &Monitor{
		env:               opts.Environment,
		release:           opts.Release,
		minLevel:          opts.MinLevel,
		reportBreadcrumbs: opts.ReportBreadcrumbs,
		sinks:             opts.Sinks,
		notifier:          opts.Notifier,
		now:               opts.Now,
		crumbs:            NewBreadcrumbs(opts.BreadcrumbCapacity),
		performance:       make(map[string]float64),
	}
	if m.env == "" {
		m.env = EnvDevelopment
	}
	if m.minLevel == "" {
		m.minLevel = LevelDebug
		if m.env == EnvProduction {
			m.minLevel = LevelInfo
		}
	}
	if m.reportBreadcrumbs <= 0 {
		m.reportBreadcrumbs = DefaultReportBreadcrumbs
	}
	if m.now == nil {
		m.now = time.Now
	}
	m.session = Session{ID: uuid.NewString(), StartTime: m.now()}
	return m
}

// Nop returns a Monitor without sinks, for callers that need a Logger but no output.
func Nop() *Monitor {
	return New(Options{})
}

// Initialize starts the session. Calling it again is a no-op and returns false.
func (m *Monitor) Initialize(ctx context.Context) bool {
	m.mu.Lock()
	if m.initialized {
		m.mu.Unlock()
		return false
	}
	m.initialized = true
	m.session = Session{ID: uuid.NewString(), StartTime: m.now()}
	sessionID := m.session.ID
	m.mu.Unlock()

	m.Info(ctx, "Monitoring initialized", LogContext{
		Component: "monitor",
		Fields:    map[string]string{"environment": m.env, "release": m.release, "session_id": sessionID},
	})
	return true
}

// Initialized reports whether Initialize has run.
func (m *Monitor) Initialized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// Dispose closes every sink that holds resources.
func (m *Monitor) Dispose(ctx context.Context) {
	for _, s := range m.sinks {
		if c, ok := s.(Closer); ok {
			m.guard(func() error { return c.Close(ctx) })
		}
	}
	m.mu.Lock()
	m.initialized = false
	m.mu.Unlock()
}

func (m *Monitor) Debug(ctx context.Context, msg string, lc LogContext) {
	m.log(ctx, LevelDebug, msg, lc, nil)
}

func (m *Monitor) Info(ctx context.Context, msg string, lc LogContext) {
	m.log(ctx, LevelInfo, msg, lc, nil)
}

func (m *Monitor) Warn(ctx context.Context, msg string, lc LogContext) {
	m.log(ctx, LevelWarn, msg, lc, nil)
}

// Error logs at error level and notifies the user named in lc, if any.
func (m *Monitor) Error(ctx context.Context, msg string, lc LogContext) {
	m.log(ctx, LevelError, msg, lc, nil)
}

func (m *Monitor) log(ctx context.Context, level Level, msg string, lc LogContext, report *Report) {
	if level != LevelError && !level.Enabled(m.minLevel) {
		return
	}
	entry := newEntry(m.now(), level, msg, lc)
	entry.Report = report

	m.crumbs.Add(Breadcrumb{
		Timestamp: entry.Timestamp,
		Message:   msg,
		Category:  "log",
		Level:     level,
		Data:      lc.crumbData(),
	})

	for _, s := range m.sinks {
		m.guard(func() error { return s.Write(ctx, entry) })
	}

	if level == LevelError && lc.UserID != "" && m.notifier != nil {
		m.guard(func() error {
			return m.notifier.Notify(ctx, Notification{
				UserID:  lc.UserID,
				Level:   LevelError,
				Message: UserMessage(lc.Err),
				Kind:    KindOf(lc.Err),
			})
		})
	}
}

// guard runs fn and drops its error or panic.
func (m *Monitor) guard(fn func() error) {
	defer func() {
		_ = recover()
	}()
	_ = fn()
}

// AddBreadcrumb records a breadcrumb and forwards it to sinks that take breadcrumbs.
func (m *Monitor) AddBreadcrumb(ctx context.Context, message, category string, level Level, data map[string]string) {
	if level == "" {
		level = LevelInfo
	}
	b := Breadcrumb{
		Timestamp: m.now(),
		Message:   message,
		Category:  category,
		Level:     level,
		Data:      data,
	}
	m.crumbs.Add(b)
	for _, s := range m.sinks {
		if bs, ok := s.(BreadcrumbSink); ok {
			m.guard(func() error { return bs.AddBreadcrumb(ctx, b) })
		}
	}
}

// Breadcrumbs returns every retained breadcrumb oldest first.
func (m *Monitor) Breadcrumbs() []Breadcrumb {
	return m.crumbs.List()
}

// CaptureError counts err against the session and logs it with a full
// diagnostic report attached.
func (m *Monitor) CaptureError(ctx context.Context, err error, lc LogContext) {
	if err == nil {
		return
	}
	m.mu.Lock()
	m.session.ErrorCount++
	m.mu.Unlock()

	lc.Err = err
	if lc.Fields == nil {
		lc.Fields = map[string]string{}
	} else {
		lc.Fields = maps.Clone(lc.Fields)
	}
	lc.Fields["error_kind"] = KindOf(err).String()

	report := m.Snapshot()
	m.log(ctx, LevelError, err.Error(), lc, &report)
}

// Recover is deferred at the top of goroutines and handlers. A panic is
// captured as an error with its stack and not re-raised.
func (m *Monitor) Recover(ctx context.Context, lc LogContext) {
	r := recover()
	if r == nil {
		return
	}
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("panic: %v", r)
	}
	if lc.Fields == nil {
		lc.Fields = map[string]string{}
	} else {
		lc.Fields = maps.Clone(lc.Fields)
	}
	lc.Fields["stack"] = string(debug.Stack())
	m.CaptureError(ctx, err, lc)
}

// Go runs fn in a goroutine whose panics are captured.
func (m *Monitor) Go(ctx context.Context, lc LogContext, fn func(ctx context.Context)) {
	go func() {
		defer m.Recover(ctx, lc)
		fn(ctx)
	}()
}

// TrackPageView counts a page view and leaves a navigation breadcrumb.
func (m *Monitor) TrackPageView(ctx context.Context, page string, data map[string]string) {
	m.mu.Lock()
	m.session.PageViews++
	m.mu.Unlock()

	crumb := map[string]string{"page": page}
	maps.Copy(crumb, data)
	m.AddBreadcrumb(ctx, "Page view: "+page, "navigation", LevelInfo, crumb)
}

// TrackInteraction counts a user interaction and leaves a ui breadcrumb.
func (m *Monitor) TrackInteraction(ctx context.Context, element, action string, data map[string]string) {
	m.mu.Lock()
	m.session.Interactions++
	m.mu.Unlock()

	crumb := map[string]string{"element": element, "action": action}
	maps.Copy(crumb, data)
	m.AddBreadcrumb(ctx, "User "+action+" on "+element, "ui", LevelInfo, crumb)
}

// TrackPerformance records a metric. A page load slower than SlowPageLoad is logged as a warning.
func (m *Monitor) TrackPerformance(ctx context.Context, metric string, value time.Duration) {
	ms := float64(value) / float64(time.Millisecond)
	m.mu.Lock()
	m.performance[metric] = ms
	m.mu.Unlock()

	formatted := strconv.FormatFloat(ms, 'f', -1, 64)
	m.AddBreadcrumb(ctx, "Performance: "+metric, "performance", LevelInfo, map[string]string{
		"metric": metric,
		"ms":     formatted,
	})

	if metric == MetricPageLoad && value > SlowPageLoad {
		m.Warn(ctx, "Slow page load detected", LogContext{
			Component: "performance",
			Action:    "track",
			Fields:    map[string]string{"metric": metric, "ms": formatted},
		})
	}
}

// SetUser attaches u to later reports. A nil user clears it.
func (m *Monitor) SetUser(u *User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u == nil {
		m.user = nil
		return
	}
	cp := *u
	m.user = &cp
}

// Session returns a copy of the session counters.
func (m *Monitor) Session() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// Snapshot returns the current diagnostic report.
func (m *Monitor) Snapshot() Report {
	m.mu.Lock()
	r := Report{
		Environment: m.env,
		Release:     m.release,
		Session:     m.session,
		Performance: maps.Clone(m.performance),
	}
	if m.user != nil {
		u := *m.user
		r.User = &u
	}
	m.mu.Unlock()

	r.Breadcrumbs = m.crumbs.Last(m.reportBreadcrumbs)
	r.Runtime = readRuntime()
	return r
}
