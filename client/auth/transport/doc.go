// Package transport implements the http.RoundTripper that carries bearer
// authentication for the Plié API: it attaches the session's access token,
// and when the backend challenges with `401 Unauthorized` it runs the shared
// token refresh and replays the original request exactly once.
package transport
