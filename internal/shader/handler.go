package shader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strconv"
	"time"

	"gitlab.com/gitlab-org/shader-preview/internal/errortracking"
	"gitlab.com/gitlab-org/shader-preview/internal/logging"
	"gitlab.com/gitlab-org/shader-preview/internal/request"
	"gitlab.com/gitlab-org/shader-preview/internal/vfs"
	"gitlab.com/gitlab-org/shader-preview/metrics"
)

// Config describes where shaders and the template live inside the served root
type Config struct {
	Dir       string
	Extension string
	Template  string
}

// Handler serves the template rewritten for the shader named by the request
// path. Every request it does not handle goes to the fallback handler.
// A shader file that is a symlink resolving outside the root counts as missing.
type Handler struct {
	root     vfs.Root
	config   Config
	fallback http.Handler
}

// NewHandler returns a Handler reading shaders and the template from root
func NewHandler(root vfs.Root, config Config, fallback http.Handler) *Handler {
	return &Handler{
		root:     root,
		config:   config,
		fallback: fallback,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.tryShader(w, r) {
		h.fallback.ServeHTTP(w, r)
	}
}

// tryShader writes the rendered template and returns true, or returns false
// without writing anything
func (h *Handler) tryShader(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}

	name, ok := Name(r.URL.Path)
	if !ok {
		return false
	}

	if !h.exists(r, name) {
		metrics.ShaderRequests.WithLabelValues("missing").Inc()
		return false
	}

	start := time.Now()

	doc, found, err := h.render(r.Context(), name)
	if err != nil {
		metrics.ShaderRequests.WithLabelValues("failed").Inc()

		logging.LogRequest(r).WithField("shader", name).WithError(err).Error("failed to render shader template")
		errortracking.CaptureErrWithReqAndStackTrace(err, r, errortracking.WithField("shader", name))

		return false
	}

	if !found {
		logging.LogRequest(r).WithField("shader", name).WithField("template", h.config.Template).
			Warn("template has no CURRENT_SHADER assignment, serving it unchanged")
	}

	metrics.TemplateRenderDuration.Observe(time.Since(start).Seconds())
	metrics.ShaderRequests.WithLabelValues("rendered").Inc()
	request.SetShader(r, name)

	w.Header().Set("Content-Type", "text/html")
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	w.WriteHeader(http.StatusOK)
	w.Write(doc)

	return true
}

func (h *Handler) shaderPath(name string) string {
	return path.Join(h.config.Dir, name+h.config.Extension)
}

func (h *Handler) exists(r *http.Request, name string) bool {
	_, err := h.root.Stat(r.Context(), h.shaderPath(name))
	if err != nil {
		logging.LogRequest(r).WithField("shader", name).WithError(err).Debug("shader not found")
		return false
	}

	return true
}

// render reads the template fresh and substitutes name into it
func (h *Handler) render(ctx context.Context, name string) ([]byte, bool, error) {
	file, err := h.root.Open(ctx, h.config.Template)
	if err != nil {
		return nil, false, fmt.Errorf("opening template %q: %w", h.config.Template, err)
	}
	defer file.Close()

	doc, err := io.ReadAll(file)
	if err != nil {
		return nil, false, fmt.Errorf("reading template %q: %w", h.config.Template, err)
	}

	doc, found := Substitute(doc, name)

	return doc, found, nil
}
