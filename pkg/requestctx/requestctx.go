package requestctx

import "context"

type ctxKey string

const (
	correlationIDKey ctxKey = "correlation_id"
	userIDKey        ctxKey = "user_id"
)

// WithCorrelationID returns a new context with the provided correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationID fetches the correlation ID from the context, if any.
func CorrelationID(ctx context.Context) string {
	v := ctx.Value(correlationIDKey)
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// WithUserID returns a new context carrying the authenticated user id.
// Only the auth middleware sets this; handlers treat it as the identity
// proven by the verified token.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserID fetches the authenticated user id from the context.
func UserID(ctx context.Context) (int64, bool) {
	v := ctx.Value(userIDKey)
	if id, ok := v.(int64); ok {
		return id, true
	}
	return 0, false
}
