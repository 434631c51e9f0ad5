package handlers

import (
	"net/http"

	"github.com/rs/cors"

	"gitlab.com/gitlab-org/shader-preview/internal/config"
)

var (
	corsHandler = cors.New(cors.Options{AllowedMethods: []string{http.MethodGet, http.MethodHead}})
)

// CorsHandler lets pages on other origins, such as an online shader editor,
// fetch shaders and assets from the server
func CorsHandler(config *config.Config, handler http.Handler) http.Handler {
	if !config.General.DisableCrossOriginRequests {
		handler = corsHandler.Handler(handler)
	}
	return handler
}
