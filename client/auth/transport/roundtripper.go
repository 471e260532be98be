package transport

import (
	"net/http"

	"github.com/plieapp/plie/client/auth"
)

// RoundTripper attaches the session's bearer token to outgoing requests and
// recovers from token expiry: when the backend answers 401 it runs the
// session's shared refresh and replays the request exactly once with the new
// token. The replay is a single bounded step, never a loop or recursion, so
// a request can trigger at most one retry.
type RoundTripper struct {
	session   *auth.Session
	transport http.RoundTripper
}

// New creates a RoundTripper bound to the given session.
func New(session *auth.Session, options ...Option) *RoundTripper {
	ret := &RoundTripper{
		session:   session,
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// 1) Send the request with the current token, if any.
	attempt := clone(req)
	if token := r.session.Token(); token != "" {
		attempt.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := r.transport.RoundTrip(attempt)
	if err != nil {
		return nil, err
	}

	// 2) Anything but a 401 is the caller's problem; same when the caller
	// opted out of the refresh cycle for this request.
	if resp.StatusCode != http.StatusUnauthorized || !retryEnabled(req.Context()) {
		return resp, nil
	}

	// 3) Run the shared refresh. No new token: surface the original 401
	// so the caller sees the backend's body.
	token, refreshErr := r.session.Refresh(req.Context())
	if refreshErr != nil {
		return resp, nil
	}
	resp.Body.Close()

	// 4) Replay once with the fresh token.
	retry := clone(req)
	retry.Header.Set("Authorization", "Bearer "+token)
	return r.transport.RoundTrip(retry)
}
