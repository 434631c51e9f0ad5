package main

import (
	"context"
	"fmt"
	"net/http"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"gitlab.com/gitlab-org/labkit/correlation"
	labmetrics "gitlab.com/gitlab-org/labkit/metrics"

	"gitlab.com/gitlab-org/shader-preview/internal/config"
	"gitlab.com/gitlab-org/shader-preview/internal/customheaders"
	"gitlab.com/gitlab-org/shader-preview/internal/handlers"
	"gitlab.com/gitlab-org/shader-preview/internal/healthcheck"
	"gitlab.com/gitlab-org/shader-preview/internal/httperrors"
	"gitlab.com/gitlab-org/shader-preview/internal/logging"
	"gitlab.com/gitlab-org/shader-preview/internal/nocache"
	"gitlab.com/gitlab-org/shader-preview/internal/rejectmethods"
	"gitlab.com/gitlab-org/shader-preview/internal/request"
	"gitlab.com/gitlab-org/shader-preview/internal/shader"
	"gitlab.com/gitlab-org/shader-preview/internal/static"
	"gitlab.com/gitlab-org/shader-preview/internal/urilimiter"
	"gitlab.com/gitlab-org/shader-preview/internal/vfs"
	"gitlab.com/gitlab-org/shader-preview/internal/vfs/local"
)

const maxExampleShaders = 5

// the factory registers its collectors, so it must only be created once
var metricsMiddleware = labmetrics.NewHandlerFactory(labmetrics.WithNamespace("shader_preview"))

type theApp struct {
	config *config.Config
	root   vfs.Root
}

func newApp(ctx context.Context, config *config.Config) (*theApp, error) {
	root, err := vfs.Instrumented(&local.VFS{}).Root(ctx, config.General.RootDir)
	if err != nil {
		return nil, fmt.Errorf("opening root directory: %w", err)
	}

	return &theApp{config: config, root: root}, nil
}

// isShaderRequest matches paths made of a single bare segment
func isShaderRequest(r *http.Request, _ *mux.RouteMatch) bool {
	_, ok := shader.Name(r.URL.Path)
	return ok
}

func (a *theApp) router() http.Handler {
	staticHandler := static.NewHandler(a.root)
	shaderHandler := shader.NewHandler(a.root, shader.Config{
		Dir:       a.config.General.ShadersDir,
		Extension: a.config.General.ShaderExtension,
		Template:  a.config.General.TemplatePath,
	}, staticHandler)

	// path cleaning and redirects are left to static serving
	router := mux.NewRouter().SkipClean(true)
	router.Methods(http.MethodGet).MatcherFunc(isShaderRequest).Handler(shaderHandler)
	router.PathPrefix("/").Handler(staticHandler)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httperrors.Serve404(w)
	})

	return router
}

// buildHandlerPipeline returns the whole chain of middleware, outermost first:
// request state, metrics, access log, correlation, no-cache, recovery, CORS,
// custom headers, URI limit, health check, method check and the router.
func (a *theApp) buildHandlerPipeline() (http.Handler, error) {
	handler := a.router()
	handler = rejectmethods.NewMiddleware(handler)
	handler = healthcheck.NewMiddleware(handler, a.config.General.StatusPath)
	handler = urilimiter.NewMiddleware(handler, a.config.General.MaxURILength)
	handler = customheaders.NewMiddleware(handler, a.config.General.CustomHeaders)
	handler = handlers.CorsHandler(a.config, handler)
	handler = ghandlers.RecoveryHandler(ghandlers.RecoveryLogger(log.StandardLogger()), ghandlers.PrintRecoveryStack(true))(handler)
	handler = nocache.NewMiddleware(handler)
	handler = correlation.InjectCorrelationID(handler, correlation.WithSetResponseHeader())

	handler, err := logging.BasicAccessLogger(handler, a.config.Log.Format)
	if err != nil {
		return nil, err
	}

	handler = metricsMiddleware(handler)
	handler = request.NewMiddleware(handler)

	return handler, nil
}

// logBanner announces the server and a few shader URLs to try
func (a *theApp) logBanner(ctx context.Context, port int) {
	log.Printf("Server running at port %d", port)

	names, err := shader.List(ctx, a.root, a.config.General.ShadersDir, a.config.General.ShaderExtension)
	if err != nil {
		log.WithError(err).WithField("shaders-dir", a.config.General.ShadersDir).Warn("Could not list shaders")
		return
	}

	if len(names) == 0 {
		log.WithField("shaders-dir", a.config.General.ShadersDir).Warn("No shaders found")
		return
	}

	if len(names) > maxExampleShaders {
		names = names[:maxExampleShaders]
	}

	for _, name := range names {
		log.Printf("  http://localhost:%d/%s", port, name)
	}
}

func runApp(ctx context.Context, config *config.Config) error {
	a, err := newApp(ctx, config)
	if err != nil {
		return err
	}

	handler, err := a.buildHandlerPipeline()
	if err != nil {
		return fmt.Errorf("building handler pipeline: %w", err)
	}

	return a.Run(ctx, handler)
}
