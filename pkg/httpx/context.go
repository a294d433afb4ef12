package httpx

import "context"

type ctxKey string

// CtxKeyUserID carries the authenticated subject through the request context.
const CtxKeyUserID ctxKey = "user_id"

// UserIDFromContext returns the authenticated user ID, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CtxKeyUserID).(string)
	return id, ok && id != ""
}
