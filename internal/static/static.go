package static

import (
	"errors"
	"net/http"
	"path"
	"strings"

	"gitlab.com/gitlab-org/shader-preview/internal/httperrors"
	"gitlab.com/gitlab-org/shader-preview/internal/logging"
	"gitlab.com/gitlab-org/shader-preview/internal/vfs"
)

var indexFiles = []string{"index.html", "index.htm"}

var errNotRegular = errors.New("not a regular file")

// Handler serves files and directory listings below root
type Handler struct {
	root vfs.Root
}

// NewHandler returns a Handler serving the tree below root
func NewHandler(root vfs.Root) *Handler {
	return &Handler{root: root}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := resolveName(r.URL.Path)

	fi, err := h.root.Stat(r.Context(), name)
	if err != nil {
		logging.LogRequest(r).WithError(err).Debug("static file not found")
		httperrors.Serve404(w)
		return
	}

	if fi.IsDir() {
		h.serveDirectory(w, r, name)
		return
	}

	// a trailing slash only makes sense for directories
	if strings.HasSuffix(r.URL.Path, "/") {
		httperrors.Serve404(w)
		return
	}

	if err := h.serveFile(w, r, name, fi); err != nil {
		logging.LogRequest(r).WithError(err).Debug("failed to serve static file")
		httperrors.Serve404(w)
	}
}

func (h *Handler) serveDirectory(w http.ResponseWriter, r *http.Request, name string) {
	if !strings.HasSuffix(r.URL.Path, "/") {
		redirectToDirectory(w, r)
		return
	}

	for _, index := range indexFiles {
		indexName := path.Join(name, index)

		fi, err := h.root.Stat(r.Context(), indexName)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}

		if err := h.serveFile(w, r, indexName, fi); err != nil {
			logging.LogRequest(r).WithError(err).Debug("failed to serve index file")
			httperrors.Serve404(w)
		}

		return
	}

	h.serveListing(w, r, name)
}

func redirectToDirectory(w http.ResponseWriter, r *http.Request) {
	target := r.URL.EscapedPath() + "/"
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	http.Redirect(w, r, target, http.StatusMovedPermanently)
}

// resolveName turns a URL path into a name relative to the root. Dot-dot
// segments can not climb above the root.
func resolveName(urlPath string) string {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		return "."
	}

	return name
}
