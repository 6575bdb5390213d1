package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/petlove/backend/constant"
	"github.com/petlove/backend/utils/errors"
	"github.com/petlove/backend/utils/token"
)

// InternalMiddleware guards worker-only routes. Callers present a short-lived
// service token signed with the shared internal secret; the calling service
// name lands in the request context.
func InternalMiddleware(secret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorized))
				return
			}

			service, err := token.Verify(secret, strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorized))
				return
			}

			ctx := context.WithValue(r.Context(), constant.ServiceKey, service)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
