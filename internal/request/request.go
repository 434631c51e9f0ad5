package request

import (
	"context"
	"net/http"
)

type ctxKey string

const (
	ctxStateKey ctxKey = "state"
)

// state is shared by every handler serving one request, so values recorded
// deep in the chain are visible to outer middleware such as the access log
type state struct {
	shader string
}

// WithState attaches an empty per-request state to the request's context
func WithState(r *http.Request) *http.Request {
	ctx := context.WithValue(r.Context(), ctxStateKey, &state{})

	return r.WithContext(ctx)
}

// NewMiddleware attaches a per-request state before calling handler
func NewMiddleware(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, WithState(r))
	})
}

func getState(r *http.Request) *state {
	s, _ := r.Context().Value(ctxStateKey).(*state)
	return s
}

// SetShader records the shader rendered for this request. It is a no-op when
// the request carries no state.
func SetShader(r *http.Request, name string) {
	if s := getState(r); s != nil {
		s.shader = name
	}
}

// GetShader returns the shader rendered for this request, if any
func GetShader(r *http.Request) string {
	if s := getState(r); s != nil {
		return s.shader
	}

	return ""
}
