package pinboard

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const testToken = "test_user:test_token"

type recordedRequest struct {
	Method string
	Path   string
	// RawPath is the path as sent, before percent-decoding.
	RawPath string
	Query   url.Values
	Form    url.Values
	Header  http.Header
}

type recorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (r *recorder) add(req recordedRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
}

func (r *recorder) all() []recordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordedRequest(nil), r.requests...)
}

// last fails the test unless exactly one request was recorded.
func (r *recorder) last(t *testing.T) recordedRequest {
	t.Helper()
	reqs := r.all()
	require.Len(t, reqs, 1)
	return reqs[0]
}

// newTestServer starts a TLS server and a Client whose dialer is redirected
// to it, so requests keep the real base URL.
func newTestServer(t *testing.T, handler http.Handler, opts ...Option) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewTLSServer(handler)
	t.Cleanup(srv.Close)

	hc := &http.Client{
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, network, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, network, srv.Listener.Addr().String())
			},
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // test server certificate
		},
	}

	client, err := NewClient(testToken, false, append([]Option{WithHTTPClient(hc)}, opts...)...)
	require.NoError(t, err)

	return client, srv
}

// newRecordingClient answers every request with status and body and records
// what it received.
func newRecordingClient(t *testing.T, status int, body string, opts ...Option) (*Client, *recorder) {
	t.Helper()

	rec := &recorder{}
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("failed to read request body: %v", err)
		}
		form, err := url.ParseQuery(string(raw))
		if err != nil {
			t.Errorf("failed to parse request body: %v", err)
		}
		rec.add(recordedRequest{
			Method:  r.Method,
			Path:    r.URL.Path,
			RawPath: r.URL.EscapedPath(),
			Query:   r.URL.Query(),
			Form:    form,
			Header:  r.Header.Clone(),
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})

	client, _ := newTestServer(t, h, opts...)
	return client, rec
}
