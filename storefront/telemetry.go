package storefront

import (
	"context"
	"errors"
	"time"

	"encore.dev/beta/errs"

	"encore.app/storefront/monitor"
)

type TelemetryResponse struct {
	Accepted bool `json:"accepted"`
}

type PageViewRequest struct {
	Page string            `json:"page" validate:"required,max=500"`
	Data map[string]string `json:"data,omitempty"`
}

func (r *PageViewRequest) Validate() error {
	return validateTelemetry(r)
}

type InteractionRequest struct {
	Element string            `json:"element" validate:"required,max=200"`
	Action  string            `json:"action" validate:"required,max=100"`
	Data    map[string]string `json:"data,omitempty"`
}

func (r *InteractionRequest) Validate() error {
	return validateTelemetry(r)
}

type PerformanceRequest struct {
	Metric  string  `json:"metric" validate:"required,max=100"`
	ValueMs float64 `json:"value_ms" validate:"gte=0"`
}

func (r *PerformanceRequest) Validate() error {
	return validateTelemetry(r)
}

type BreadcrumbRequest struct {
	Message  string            `json:"message" validate:"required,max=1000"`
	Category string            `json:"category" validate:"required,max=100"`
	Level    monitor.Level     `json:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Data     map[string]string `json:"data,omitempty"`
}

func (r *BreadcrumbRequest) Validate() error {
	return validateTelemetry(r)
}

type ErrorReportRequest struct {
	Message   string            `json:"message" validate:"required,max=2000"`
	Component string            `json:"component,omitempty" validate:"max=200"`
	Action    string            `json:"action,omitempty" validate:"max=200"`
	Stack     string            `json:"stack,omitempty" validate:"max=20000"`
	Fields    map[string]string `json:"fields,omitempty"`
}

func (r *ErrorReportRequest) Validate() error {
	return validateTelemetry(r)
}

func validateTelemetry(v any) error {
	if err := validate.Struct(v); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

var errRateLimited = &errs.Error{Code: errs.ResourceExhausted, Message: "Too many requests. Please slow down."}

// admit applies the ingestion rate limit. analytics marks usage tracking,
// which ENABLE_ANALYTICS switches off.
func (s *Service) admit(analytics bool) (bool, error) {
	if analytics && !s.cfg.EnableAnalytics {
		return false, nil
	}
	if s.limiter != nil && !s.limiter.Allow() {
		return false, errRateLimited
	}
	return true, nil
}

//encore:api public path=/v1/telemetry/pageview method=POST
func (s *Service) TrackPageView(ctx context.Context, req *PageViewRequest) (*TelemetryResponse, error) {
	ok, err := s.admit(true)
	if !ok {
		return &TelemetryResponse{}, err
	}
	s.monitor.TrackPageView(ctx, req.Page, req.Data)
	return &TelemetryResponse{Accepted: true}, nil
}

//encore:api public path=/v1/telemetry/interaction method=POST
func (s *Service) TrackInteraction(ctx context.Context, req *InteractionRequest) (*TelemetryResponse, error) {
	ok, err := s.admit(true)
	if !ok {
		return &TelemetryResponse{}, err
	}
	s.monitor.TrackInteraction(ctx, req.Element, req.Action, req.Data)
	return &TelemetryResponse{Accepted: true}, nil
}

//encore:api public path=/v1/telemetry/performance method=POST
func (s *Service) TrackPerformance(ctx context.Context, req *PerformanceRequest) (*TelemetryResponse, error) {
	ok, err := s.admit(true)
	if !ok {
		return &TelemetryResponse{}, err
	}
	s.monitor.TrackPerformance(ctx, req.Metric, time.Duration(req.ValueMs*float64(time.Millisecond)))
	return &TelemetryResponse{Accepted: true}, nil
}

//encore:api public path=/v1/telemetry/breadcrumb method=POST
func (s *Service) AddBreadcrumb(ctx context.Context, req *BreadcrumbRequest) (*TelemetryResponse, error) {
	ok, err := s.admit(false)
	if !ok {
		return &TelemetryResponse{}, err
	}
	s.monitor.AddBreadcrumb(ctx, req.Message, req.Category, req.Level, req.Data)
	return &TelemetryResponse{Accepted: true}, nil
}

// ReportError captures an error raised in the storefront UI.
//
//encore:api public path=/v1/telemetry/error method=POST
func (s *Service) ReportError(ctx context.Context, req *ErrorReportRequest) (*TelemetryResponse, error) {
	ok, err := s.admit(false)
	if !ok {
		return &TelemetryResponse{}, err
	}

	lc := monitor.LogContext{
		Component: req.Component,
		Action:    req.Action,
		Fields:    map[string]string{"source": "client"},
	}
	for k, v := range req.Fields {
		lc.Fields[k] = v
	}
	if req.Stack != "" {
		lc.Fields["stack"] = req.Stack
	}
	if caller := currentCaller(); caller != nil {
		lc.UserID = caller.UserID
	}
	s.monitor.CaptureError(ctx, errors.New(req.Message), lc)
	return &TelemetryResponse{Accepted: true}, nil
}
