package storefront

import (
	"fmt"
	"runtime/debug"

	"encore.dev/beta/auth"
	"encore.dev/beta/errs"
	"encore.dev/middleware"

	"encore.app/storefront/monitor"
)

// CaptureErrors funnels every failed or panicking request into the monitor.
// Server-side failures are captured with a diagnostic report; client errors
// are logged as warnings.
//
//encore:middleware target=all
func (s *Service) CaptureErrors(req middleware.Request, next middleware.Next) (resp middleware.Response) {
	ctx := req.Context()
	data := req.Data()
	lc := monitor.LogContext{
		Component: "api",
		Action:    data.Path,
	}
	if uid, ok := auth.UserID(); ok {
		lc.UserID = string(uid)
	}
	if data.Service != "" {
		lc.Resource = data.Service + "." + data.Endpoint
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", r)
		}
		lc.Fields = map[string]string{"stack": string(debug.Stack())}
		s.monitor.CaptureError(ctx, err, lc)
		resp = middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "internal error"}}
	}()

	resp = next(req)
	if resp.Err == nil {
		return resp
	}

	lc.Err = resp.Err
	if serverSide(errs.Code(resp.Err)) {
		s.monitor.CaptureError(ctx, resp.Err, lc)
	} else {
		s.monitor.Warn(ctx, "request failed", lc)
	}
	return resp
}

func serverSide(code errs.ErrCode) bool {
	switch code {
	case errs.Internal, errs.Unknown, errs.Unavailable, errs.DeadlineExceeded, errs.DataLoss, errs.Unimplemented:
		return true
	}
	return false
}
