// Package plie provides the Go client for the Plié dance-academy management
// API.
//
// The package is an umbrella over the client subpackages: it re-exports the
// high-level Client so most callers only import this root. The client keeps
// its access token in memory, sends the backend's HttpOnly refresh cookie on
// every call and transparently refreshes the token exactly once when a
// request is challenged with 401.
//
// Example:
//
//	cli, _ := plie.New("https://academy.example.com")
//	res, err := cli.Auth.Login(ctx, "admin@example.com", "secret")
//	groups, err := cli.Admin.Groups(ctx)
package plie
