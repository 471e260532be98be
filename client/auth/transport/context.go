package transport

import "context"

type contextKey string

const contextRetryKey contextKey = "retryOn401"

// WithoutRetry marks the request context so a 401 is returned as-is instead
// of triggering the refresh-and-replay cycle. The login, refresh and logout
// calls use it; replayed requests inherit it implicitly because the replay
// happens below this layer.
func WithoutRetry(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextRetryKey, false)
}

func retryEnabled(ctx context.Context) bool {
	if v := ctx.Value(contextRetryKey); v != nil {
		if enabled, ok := v.(bool); ok {
			return enabled
		}
	}
	return true
}
