package api

import "context"

type contextKey string

const webIDKey contextKey = "webID"

// WebIDFromContext extracts the agent's WebID from the context.
// Returns empty string if not present.
func WebIDFromContext(ctx context.Context) string {
	if v := ctx.Value(webIDKey); v != nil {
		if webID, ok := v.(string); ok {
			return webID
		}
	}

	return ""
}

// withWebID returns a new context with the agent's WebID set.
func withWebID(ctx context.Context, webID string) context.Context {
	return context.WithValue(ctx, webIDKey, webID)
}
