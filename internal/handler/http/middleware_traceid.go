package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/azgeda96/secure-pass-vault/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a trace identifier to every request. An incoming
// X-Trace-ID header is honoured so that client-originated traces stay intact;
// otherwise a fresh UUIDv7 is generated. The identifier is bound to the
// request-scoped logger and echoed back in the response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	generator := utils.NewUUIDGenerator()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = generator.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
