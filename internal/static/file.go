package static

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path"

	"gitlab.com/gitlab-org/shader-preview/internal/vfs"
	"gitlab.com/gitlab-org/shader-preview/metrics"
)

func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request, name string, fi os.FileInfo) error {
	// The file exists, but is not a supported type to serve. Perhaps a block
	// special device or something else that may be a security risk.
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", name, errNotRegular)
	}

	file, err := h.root.Open(r.Context(), name)
	if err != nil {
		return err
	}
	defer file.Close()

	contentType, err := detectContentType(name, file)
	if err != nil {
		return err
	}

	metrics.StaticServingFileSize.Observe(float64(fi.Size()))

	w.Header().Set("Content-Type", contentType)
	http.ServeContent(w, r, name, fi.ModTime(), file)

	return nil
}

// Detect file's content-type either by extension or mime-sniffing.
// Implementation is adapted from Golang's `http.serveContent()`
// See https://github.com/golang/go/blob/902fc114272978a40d2e65c2510a18e870077559/src/net/http/fs.go#L194
func detectContentType(name string, file vfs.File) (string, error) {
	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType != "" {
		return contentType, nil
	}

	var buf [512]byte

	// Using `io.ReadFull()` because `file.Read()` may be chunked.
	// Ignoring errors because we don't care if the 512 bytes cannot be read.
	n, _ := io.ReadFull(file, buf[:])
	contentType = http.DetectContentType(buf[:n])

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("seeking %s: %w", name, err)
	}

	return contentType, nil
}
