// Package mock provides an httptest-based Plié backend for tests: real
// signed JWT access tokens, an HttpOnly refresh cookie, a refresh-call
// counter and helpers to register bearer-protected data endpoints.
package mock
