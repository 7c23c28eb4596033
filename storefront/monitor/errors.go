package monitor

import (
	"errors"
	"html"

	"encore.dev/beta/errs"
	"github.com/microcosm-cc/bluemonday"
)

// ErrorKind is the user-facing classification of an error. It is derived
// from the errs code set where the error was raised.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindBusiness
	KindNetwork
	KindAuth
	KindPermission
	KindNotFound
	KindConflict
	KindServer
)

var kindNames = map[ErrorKind]string{
	KindUnknown:    "unknown",
	KindValidation: "validation",
	KindBusiness:   "business",
	KindNetwork:    "network",
	KindAuth:       "auth",
	KindPermission: "permission",
	KindNotFound:   "not_found",
	KindConflict:   "conflict",
	KindServer:     "server",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

var displayMessages = map[ErrorKind]string{
	KindNetwork:    "Network error. Please check your connection and try again.",
	KindAuth:       "Your session has expired. Please sign in again.",
	KindPermission: "You don't have permission to perform this action.",
	KindNotFound:   "The requested item could not be found.",
	KindConflict:   "This request was already submitted.",
	KindServer:     "Something went wrong on our end. Please try again later.",
	KindUnknown:    "An unexpected error occurred. Please try again.",
}

// KindOf classifies err by its errs code.
func KindOf(err error) ErrorKind {
	var e *errs.Error
	if !errors.As(err, &e) {
		return KindUnknown
	}
	switch e.Code {
	case errs.InvalidArgument, errs.OutOfRange:
		return KindValidation
	case errs.FailedPrecondition, errs.ResourceExhausted:
		return KindBusiness
	case errs.Unavailable, errs.DeadlineExceeded, errs.Canceled:
		return KindNetwork
	case errs.Unauthenticated:
		return KindAuth
	case errs.PermissionDenied:
		return KindPermission
	case errs.NotFound:
		return KindNotFound
	case errs.AlreadyExists, errs.Aborted:
		return KindConflict
	case errs.Internal, errs.DataLoss, errs.Unimplemented:
		return KindServer
	default:
		return KindUnknown
	}
}

var textPolicy = bluemonday.StrictPolicy()

// UserMessage is the sentence shown to a user for err. Validation and
// business-rule errors show their own message with markup stripped.
func UserMessage(err error) string {
	kind := KindOf(err)
	if kind != KindValidation && kind != KindBusiness {
		return displayMessages[kind]
	}
	var e *errs.Error
	errors.As(err, &e)
	if clean := sanitizeText(e.Message); clean != "" {
		return clean
	}
	return displayMessages[KindUnknown]
}

// sanitizeText strips markup and returns plain text.
func sanitizeText(s string) string {
	return html.UnescapeString(textPolicy.Sanitize(s))
}
