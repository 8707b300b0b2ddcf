package http

import (
	"net/http"

	"github.com/MKhiriev/go-novel-hub/internal/logger"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a child logger carrying "trace_id" to the request
// context. An incoming X-Trace-ID header is reused, otherwise a new UUIDv7
// is generated. The id is echoed back in the response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = h.traceIDGenerator.Generate()
		}

		l := &logger.Logger{Logger: h.logger.With().Str("trace_id", traceID).Logger()}
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
