package transport

import "net/http"

type Option func(*RoundTripper)

// WithTransport sets the underlying transport
func WithTransport(transport http.RoundTripper) Option {
	return func(t *RoundTripper) {
		t.transport = transport
	}
}

// WithCookieJar wires a jar so the backend's HttpOnly refresh cookie travels
// with every request, including the internal refresh call.
func WithCookieJar(jar http.CookieJar) Option {
	return func(t *RoundTripper) {
		t.transport = WrapWithCookieJar(t.transport, jar)
	}
}
