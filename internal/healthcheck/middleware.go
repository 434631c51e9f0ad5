package healthcheck

import (
	"net/http"
)

// NewMiddleware answers requests for statusPath with "success" and passes
// everything else to handler. An empty statusPath disables the check.
func NewMiddleware(handler http.Handler, statusPath string) http.Handler {
	if statusPath == "" {
		return handler
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == statusPath {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Write([]byte("success\n"))

			return
		}

		handler.ServeHTTP(w, r)
	})
}
