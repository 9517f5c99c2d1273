package iphauthz

import "context"

type sessionIDContextKey struct{}

// WithSessionID attaches the caller's session identifier to ctx. The
// middleware package uses it to resolve which per-session role cache a
// request reads from.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDContextKey{}, sessionID)
}

// SessionIDFromContext returns the session identifier attached by
// [WithSessionID], if any.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}

	sessionID, _ := ctx.Value(sessionIDContextKey{}).(string)
	if sessionID == "" {
		return "", false
	}
	return sessionID, true
}
