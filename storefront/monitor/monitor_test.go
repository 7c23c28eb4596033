package monitor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"encore.dev/beta/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type recordingSink struct {
	mu      sync.Mutex
	entries []LogEntry
	crumbs  []Breadcrumb
	closed  bool
}

func (s *recordingSink) Write(_ context.Context, e LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	return nil
}

func (s *recordingSink) AddBreadcrumb(_ context.Context, b Breadcrumb) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.crumbs = append(s.crumbs, b)
	return nil
}

func (s *recordingSink) Close(context.Context) error {
	s.closed = true
	return nil
}

type failingSink struct{ panics bool }

func (f failingSink) Write(context.Context, LogEntry) error {
	if f.panics {
		panic("sink exploded")
	}
	return errors.New("disk full")
}

type recordingNotifier struct {
	sent []Notification
}

func (n *recordingNotifier) Notify(_ context.Context, note Notification) error {
	n.sent = append(n.sent, note)
	return nil
}

func TestMonitorLevelThreshold(t *testing.T) {
	testCases := []struct {
		name        string
		environment string
		minLevel    Level
		expected    []Level
	}{
		{
			name:        "development_logs_everything",
			environment: EnvDevelopment,
			expected:    []Level{LevelDebug, LevelInfo, LevelWarn, LevelError},
		},
		{
			name:        "production_drops_debug",
			environment: EnvProduction,
			expected:    []Level{LevelInfo, LevelWarn, LevelError},
		},
		{
			name:        "explicit_error_threshold",
			environment: EnvProduction,
			minLevel:    LevelError,
			expected:    []Level{LevelError},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sink := &recordingSink{}
			m := New(Options{Environment: tc.environment, MinLevel: tc.minLevel, Sinks: []Sink{sink}})
			ctx := context.Background()

			m.Debug(ctx, "d", LogContext{})
			m.Info(ctx, "i", LogContext{})
			m.Warn(ctx, "w", LogContext{})
			m.Error(ctx, "e", LogContext{})

			var got []Level
			for _, e := range sink.entries {
				got = append(got, e.Level)
			}
			assert.Equal(t, tc.expected, got)
			assert.Len(t, m.Breadcrumbs(), len(tc.expected))
		})
	}
}

func TestMonitorSinkFailuresAreSwallowed(t *testing.T) {
	sink := &recordingSink{}
	m := New(Options{Sinks: []Sink{failingSink{}, failingSink{panics: true}, sink}})

	assert.NotPanics(t, func() {
		m.Error(context.Background(), "order failed", LogContext{Component: "checkout"})
	})
	require.Len(t, sink.entries, 1)
	assert.Equal(t, "checkout", sink.entries[0].Component)
}

func TestMonitorErrorNotifiesUser(t *testing.T) {
	notifier := &recordingNotifier{}
	m := New(Options{Notifier: notifier})
	ctx := context.Background()

	m.Error(ctx, "checkout failed", LogContext{
		UserID: "user-1",
		Err:    &errs.Error{Code: errs.FailedPrecondition, Message: "Only 2 left of Silk Saree"},
	})
	m.Error(ctx, "background failure", LogContext{Err: errors.New("boom")})
	m.Warn(ctx, "not an error", LogContext{UserID: "user-1"})

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "user-1", notifier.sent[0].UserID)
	assert.Equal(t, "Only 2 left of Silk Saree", notifier.sent[0].Message)
	assert.Equal(t, KindBusiness, notifier.sent[0].Kind)
}

func TestMonitorInitializeIsIdempotent(t *testing.T) {
	sink := &recordingSink{}
	m := New(Options{Sinks: []Sink{sink}})
	ctx := context.Background()

	assert.True(t, m.Initialize(ctx))
	sessionID := m.Session().ID
	assert.False(t, m.Initialize(ctx))
	assert.Equal(t, sessionID, m.Session().ID)
	assert.True(t, m.Initialized())
	assert.Len(t, sink.entries, 1)

	m.Dispose(ctx)
	assert.True(t, sink.closed)
	assert.False(t, m.Initialized())
}

func TestMonitorCaptureError(t *testing.T) {
	sink := &recordingSink{}
	m := New(Options{Sinks: []Sink{sink}, ReportBreadcrumbs: 2})
	ctx := context.Background()

	m.SetUser(&User{ID: "user-9", Email: "asha@example.com"})
	m.TrackPageView(ctx, "/cart", nil)
	m.TrackInteraction(ctx, "checkout-button", "click", nil)
	m.TrackPerformance(ctx, "ttfb", 120*time.Millisecond)

	m.CaptureError(ctx, &errs.Error{Code: errs.Unavailable, Message: "supabase down"}, LogContext{Component: "checkout"})
	m.CaptureError(ctx, nil, LogContext{})

	session := m.Session()
	assert.Equal(t, int64(1), session.ErrorCount)
	assert.Equal(t, int64(1), session.PageViews)
	assert.Equal(t, int64(1), session.Interactions)

	require.Len(t, sink.entries, 1)
	entry := sink.entries[0]
	assert.Equal(t, LevelError, entry.Level)
	assert.Equal(t, "network", entry.Fields["error_kind"])
	require.NotNil(t, entry.Report)
	assert.Equal(t, "user-9", entry.Report.User.ID)
	assert.Equal(t, 120.0, entry.Report.Performance["ttfb"])
	require.Len(t, entry.Report.Breadcrumbs, 2)
	assert.Equal(t, "Performance: ttfb", entry.Report.Breadcrumbs[1].Message)
	assert.Positive(t, entry.Report.Runtime.Goroutines)
}

func TestMonitorTrackPerformanceSlowPageLoad(t *testing.T) {
	testCases := []struct {
		name       string
		value      time.Duration
		expectWarn bool
	}{
		{name: "fast_page_load", value: 1200 * time.Millisecond},
		{name: "exactly_threshold", value: SlowPageLoad},
		{name: "slow_page_load", value: 3500 * time.Millisecond, expectWarn: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sink := &recordingSink{}
			m := New(Options{Sinks: []Sink{sink}})

			m.TrackPerformance(context.Background(), MetricPageLoad, tc.value)

			if tc.expectWarn {
				require.Len(t, sink.entries, 1)
				assert.Equal(t, LevelWarn, sink.entries[0].Level)
				assert.Equal(t, "3500", sink.entries[0].Fields["ms"])
			} else {
				assert.Empty(t, sink.entries)
			}
			require.Len(t, sink.crumbs, 1)
			assert.Equal(t, "performance", sink.crumbs[0].Category)
		})
	}
}

func TestMonitorRecover(t *testing.T) {
	sink := &recordingSink{}
	m := New(Options{Sinks: []Sink{sink}})
	ctx := context.Background()

	assert.NotPanics(t, func() {
		defer m.Recover(ctx, LogContext{Component: "worker"})
		panic("nil map write")
	})

	require.Len(t, sink.entries, 1)
	assert.Equal(t, "panic: nil map write", sink.entries[0].Message)
	assert.Contains(t, sink.entries[0].Fields["stack"], "goroutine")
	assert.Equal(t, int64(1), m.Session().ErrorCount)
}

func TestMonitorGo(t *testing.T) {
	sink := &recordingSink{}
	m := New(Options{Sinks: []Sink{sink}})
	done := make(chan struct{})

	m.Go(context.Background(), LogContext{Component: "email"}, func(ctx context.Context) {
		defer close(done)
		panic(errors.New("smtp gone"))
	})
	<-done

	assert.Eventually(t, func() bool {
		sink.mu.Lock()
		defer sink.mu.Unlock()
		return len(sink.entries) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestLocalStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app_logs.jsonl")
	store := NewLocalStore(path, 3)
	m := New(Options{Sinks: []Sink{store}})
	ctx := context.Background()

	for _, msg := range []string{"a", "b", "c", "d"} {
		m.Info(ctx, msg, LogContext{Component: "test"})
	}

	recent := store.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, "b", recent[0].Message)
	assert.Equal(t, "d", recent[2].Message)

	require.NoError(t, store.Close(ctx))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], `"message":"a"`)

	store.Clear()
	assert.Empty(t, store.Recent())
}

func TestForwarder(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	fwd := NewForwarderWithProvider(tp)
	m := New(Options{Sinks: []Sink{fwd}})

	ctx, parent := tp.Tracer("test").Start(context.Background(), "request")
	m.AddBreadcrumb(ctx, "cart loaded", "data", LevelInfo, map[string]string{"items": "3"})
	m.Info(ctx, "applying coupon", LogContext{Component: "checkout"})
	m.CaptureError(ctx, errors.New("insert order failed"), LogContext{Component: "checkout", UserID: "u-1"})
	parent.End()

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	errSpan := spans[0]
	assert.Equal(t, "error: insert order failed", errSpan.Name())
	assert.Equal(t, codes.Error, errSpan.Status().Code)
	var eventNames []string
	for _, ev := range errSpan.Events() {
		eventNames = append(eventNames, ev.Name)
	}
	assert.Contains(t, eventNames, "cart loaded")
	assert.Contains(t, eventNames, "exception")

	request := spans[1]
	var requestEvents []string
	for _, ev := range request.Events() {
		requestEvents = append(requestEvents, ev.Name)
	}
	assert.Equal(t, []string{"cart loaded", "applying coupon"}, requestEvents)
}
