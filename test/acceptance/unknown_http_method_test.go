package acceptance_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/gitlab-org/shader-preview/internal/testhelpers"
)

func TestUnknownHTTPMethod(t *testing.T) {
	RunServerProcess(t)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete, "UNKNOWN"} {
		t.Run(method, func(t *testing.T) {
			req, err := http.NewRequest(method, httpListener.URL("/ocean"), nil)
			require.NoError(t, err)

			rsp, err := DoServerRequest(t, req)
			require.NoError(t, err)
			testhelpers.Close(t, rsp.Body)

			require.Equal(t, http.StatusNotImplemented, rsp.StatusCode)
			require.Equal(t, cacheControl, rsp.Header.Get("Cache-Control"))
		})
	}
}

func TestHeadRequest(t *testing.T) {
	RunServerProcess(t)

	req, err := http.NewRequest(http.MethodHead, httpListener.URL("/index.html"), nil)
	require.NoError(t, err)

	rsp, err := DoServerRequest(t, req)
	require.NoError(t, err)
	testhelpers.Close(t, rsp.Body)

	require.Equal(t, http.StatusOK, rsp.StatusCode)
	require.Equal(t, cacheControl, rsp.Header.Get("Cache-Control"))
}
