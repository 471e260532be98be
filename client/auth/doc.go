// Package auth manages the client's credential lifecycle: an in-memory
// access token plus a shared refresh operation that concurrent requests
// de-duplicate down to a single HTTP call.
package auth
