package nocache

import (
	"net/http"
)

// HeaderValue is sent as Cache-Control on every response
const HeaderValue = "no-store, no-cache, must-revalidate"

// NewMiddleware returns middleware that instructs clients and intermediaries
// not to cache any response. The header is set again right before the status
// line is written, so it overrides whatever the wrapped handler chose.
func NewMiddleware(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// handlers that never write still get the header through net/http
		w.Header().Set("Cache-Control", HeaderValue)

		handler.ServeHTTP(&responseWriter{ResponseWriter: w}, r)
	})
}

type responseWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		w.ResponseWriter.Header().Set("Cache-Control", HeaderValue)
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	return w.ResponseWriter.Write(data)
}

func (w *responseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		if !w.wroteHeader {
			w.WriteHeader(http.StatusOK)
		}
		f.Flush()
	}
}

// Unwrap returns the wrapped http.ResponseWriter
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
