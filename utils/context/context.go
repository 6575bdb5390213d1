package context

import (
	"context"

	"github.com/petlove/backend/constant"
)

// GetRequestID returns the request ID injected by the request-id middleware.
func GetRequestID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.RequestIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

// GetService returns the caller service name set by the internal-auth
// middleware on internal routes.
func GetService(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.ServiceKey)
	if v == nil {
		return "", false
	}
	svc, ok := v.(string)
	return svc, ok
}
