package plie

import (
	"github.com/plieapp/plie/client"
)

// Client is the high-level API client; see the client package.
type Client = client.Client

// Option configures a Client.
type Option = client.Option

// New creates a Client for the backend at baseURL.
func New(baseURL string, options ...Option) (*Client, error) {
	return client.New(baseURL, options...)
}
