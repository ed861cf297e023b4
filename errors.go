package pinboard

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed call.
type Kind int

const (
	// KindInvalidArgument is a local validation failure. No request was sent.
	KindInvalidArgument Kind = iota + 1
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindRateLimitExceeded
	KindServerError
	// KindAPI covers every other non-2xx status and undecodable 2xx bodies.
	KindAPI
	// KindNetwork is a transport-level failure: no HTTP status was received.
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindBadRequest:
		return "bad request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not found"
	case KindRateLimitExceeded:
		return "rate limit exceeded"
	case KindServerError:
		return "server error"
	case KindAPI:
		return "API error"
	case KindNetwork:
		return "network error"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Sentinel errors for errors.Is() checks. Every *Error matches exactly one.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrBadRequest        = errors.New("bad request")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	ErrServerError       = errors.New("server error")
	ErrAPI               = errors.New("API error")
	ErrNetwork           = errors.New("network error")
)

var sentinels = map[Kind]error{
	KindInvalidArgument:   ErrInvalidArgument,
	KindBadRequest:        ErrBadRequest,
	KindUnauthorized:      ErrUnauthorized,
	KindForbidden:         ErrForbidden,
	KindNotFound:          ErrNotFound,
	KindRateLimitExceeded: ErrRateLimitExceeded,
	KindServerError:       ErrServerError,
	KindAPI:               ErrAPI,
	KindNetwork:           ErrNetwork,
}

// Error is returned by every failing Client call.
type Error struct {
	Kind Kind
	// StatusCode is zero for local and network failures.
	StatusCode int
	// Body is the raw response body, when a response was received.
	Body    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.StatusCode != 0 && (e.Kind == KindServerError || e.Kind == KindAPI) {
		msg = fmt.Sprintf("%s (%d)", msg, e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

// KindOf reports the Kind of err, or zero if err is not an *Error.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}

func invalidArgument(format string, args ...any) error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func networkError(err error) error {
	return &Error{Kind: KindNetwork, Err: err}
}

// classifyStatus maps a non-2xx response to its error kind. The body text is
// kept verbatim so service-side validation messages reach the caller.
func classifyStatus(status int, body []byte) error {
	e := &Error{StatusCode: status, Body: string(body), Message: string(body)}
	switch {
	case status == http.StatusBadRequest:
		e.Kind = KindBadRequest
	case status == http.StatusUnauthorized:
		e.Kind = KindUnauthorized
	case status == http.StatusForbidden:
		e.Kind = KindForbidden
	case status == http.StatusNotFound:
		e.Kind = KindNotFound
	case status == http.StatusTooManyRequests:
		e.Kind = KindRateLimitExceeded
	case status >= 500 && status < 600:
		e.Kind = KindServerError
	default:
		e.Kind = KindAPI
	}
	return e
}
