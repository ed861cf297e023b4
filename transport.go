package pinboard

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// loggingTransport wraps a RoundTripper and logs each round trip.
// Headers are never logged; they carry the auth token.
type loggingTransport struct {
	next   http.RoundTripper
	logger zerolog.Logger
}

func newLoggingTransport(next http.RoundTripper, logger zerolog.Logger) *loggingTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{next: next, logger: logger}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		t.logger.Debug().
			Err(err).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("pinboard request failed")
		return nil, err
	}

	t.logger.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("pinboard request")
	return resp, nil
}
