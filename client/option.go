package client

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// Option represents option
type Option func(c *Client)

// WithHTTPClient replaces the assembled transport stack entirely; the caller
// then owns bearer handling and retry.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// WithCookieJar sets the jar carrying the HttpOnly refresh cookie; pass a
// transport.FileJar to keep a CLI logged in between runs.
func WithCookieJar(jar http.CookieJar) Option {
	return func(c *Client) {
		c.jar = jar
	}
}

// WithLogger sets logger
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithUserAgent sets the User-Agent header value
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}
