package monitor

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "naaz/monitor"

// Forwarder sends entries to the remote error tracker over OTLP. Breadcrumbs
// and non-error entries become events on the span in ctx; errors become
// their own span with the report's breadcrumbs attached as events.
type Forwarder struct {
	tracer   trace.Tracer
	shutdown func(context.Context) error
}

// NewForwarder exports to endpoint with a batching OTLP/HTTP exporter.
func NewForwarder(ctx context.Context, endpoint, serviceName, release, environment string) (*Forwarder, error) {
	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(release),
			semconv.DeploymentEnvironment(environment),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	return &Forwarder{tracer: tp.Tracer(tracerName), shutdown: tp.Shutdown}, nil
}

// NewForwarderWithProvider uses an existing tracer provider.
func NewForwarderWithProvider(tp trace.TracerProvider) *Forwarder {
	return &Forwarder{tracer: tp.Tracer(tracerName)}
}

func (f *Forwarder) Write(ctx context.Context, e LogEntry) error {
	if e.Level != LevelError {
		trace.SpanFromContext(ctx).AddEvent(e.Message, trace.WithTimestamp(e.Timestamp), trace.WithAttributes(entryAttributes(e)...))
		return nil
	}

	_, span := f.tracer.Start(ctx, "error: "+e.Message,
		trace.WithTimestamp(e.Timestamp),
		trace.WithAttributes(entryAttributes(e)...),
	)
	defer span.End()

	if r := e.Report; r != nil {
		span.SetAttributes(
			attribute.String("session.id", r.Session.ID),
			attribute.Int64("session.page_views", r.Session.PageViews),
			attribute.Int64("session.interactions", r.Session.Interactions),
			attribute.Int64("session.error_count", r.Session.ErrorCount),
			attribute.Int("runtime.goroutines", r.Runtime.Goroutines),
			attribute.Int64("runtime.heap_alloc", int64(r.Runtime.HeapAlloc)),
		)
		if r.User != nil {
			span.SetAttributes(attribute.String("enduser.id", r.User.ID))
		}
		for _, k := range sortedKeys(r.Performance) {
			span.SetAttributes(attribute.Float64("performance."+k, r.Performance[k]))
		}
		for _, b := range r.Breadcrumbs {
			span.AddEvent(b.Message, trace.WithTimestamp(b.Timestamp), trace.WithAttributes(crumbAttributes(b)...))
		}
	}

	err := e.Err()
	if err == nil {
		err = errors.New(e.Message)
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, e.Message)
	return nil
}

func (f *Forwarder) AddBreadcrumb(ctx context.Context, b Breadcrumb) error {
	trace.SpanFromContext(ctx).AddEvent(b.Message, trace.WithTimestamp(b.Timestamp), trace.WithAttributes(crumbAttributes(b)...))
	return nil
}

func (f *Forwarder) Close(ctx context.Context) error {
	if f.shutdown == nil {
		return nil
	}
	return f.shutdown(ctx)
}

func entryAttributes(e LogEntry) []attribute.KeyValue {
	attrs := []attribute.KeyValue{attribute.String("log.level", string(e.Level))}
	kv := e.attrs()
	for i := 0; i+1 < len(kv); i += 2 {
		attrs = append(attrs, attribute.String("log."+kv[i].(string), kv[i+1].(string)))
	}
	return attrs
}

func crumbAttributes(b Breadcrumb) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("breadcrumb.category", b.Category),
		attribute.String("breadcrumb.level", string(b.Level)),
	}
	for _, k := range sortedKeys(b.Data) {
		attrs = append(attrs, attribute.String("breadcrumb.data."+k, b.Data[k]))
	}
	return attrs
}
