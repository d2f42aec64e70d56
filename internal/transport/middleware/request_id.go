package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/magadiflo/todo-list-backend/pkg/ctxutil"
)

// RequestIDHeader is the HTTP header carrying the request identifier.
const RequestIDHeader = "X-Request-Id"

// RequestID returns middleware that ensures every request has an ID:
// an incoming X-Request-Id header is reused, otherwise a new UUID is
// generated. The ID is stored in the context and echoed in the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
