package rejectmethods

import (
	"net/http"

	"gitlab.com/gitlab-org/shader-preview/internal/httperrors"
)

// NewMiddleware answers every method but GET and HEAD with 501 Not Implemented
func NewMiddleware(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead:
			handler.ServeHTTP(w, r)
		default:
			w.Header().Set("Allow", "GET, HEAD")
			httperrors.Serve501(w)
		}
	})
}
