package customheaders

import (
	"net/http"
)

// NewMiddleware adds the -header values to every response before the wrapped
// handler runs. The no-cache middleware sits outside it and sets
// Cache-Control again when the headers are written, so a custom
// Cache-Control never reaches the client.
func NewMiddleware(handler http.Handler, headers http.Header) http.Handler {
	if len(headers) == 0 {
		return handler
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		AddCustomHeaders(w, headers)

		handler.ServeHTTP(w, r)
	})
}
