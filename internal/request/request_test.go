package request

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShaderIsSharedWithOuterHandlers(t *testing.T) {
	var outer *http.Request

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// a deeper handler derives a new request, like mux does
		SetShader(r.WithContext(r.Context()), "ocean")
	})

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		outer = r
		inner.ServeHTTP(w, r)
	})

	NewMiddleware(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ocean", nil))

	require.Equal(t, "ocean", GetShader(outer))
}

func TestWithoutState(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/ocean", nil)

	require.NotPanics(t, func() {
		SetShader(r, "ocean")
	})
	require.Empty(t, GetShader(r))
}
