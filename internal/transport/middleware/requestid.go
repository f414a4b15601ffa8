package middleware

import (
	"net/http"

	"github.com/frahmantamala/hrms-backend/pkg/logger"
	"github.com/google/uuid"
)

const traceHeader = "X-Trace-ID"

// TraceID tags every request with a correlation id: the caller's, or a fresh
// uuid when none was sent. The id travels on the context logger as trace_id
// and is echoed back in the response header.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(traceHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(traceHeader, id)

		ctx := logger.With(r.Context(), "trace_id", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
