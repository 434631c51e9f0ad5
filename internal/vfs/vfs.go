package vfs

import (
	"context"
	"io"
	"io/fs"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"

	"gitlab.com/gitlab-org/shader-preview/metrics"
)

// VFS abstracts the things the server needs to open a directory tree for serving.
type VFS interface {
	Root(ctx context.Context, path string) (Root, error)
	Name() string
}

//go:generate mockgen -destination=mock/root_mock.go -package=mock gitlab.com/gitlab-org/shader-preview/internal/vfs Root

// Root abstracts the things the server needs to read files below a given root path.
// Every name is relative to the root and must not resolve outside of it.
type Root interface {
	Stat(ctx context.Context, name string) (os.FileInfo, error)
	Open(ctx context.Context, name string) (File, error)
	ReadDir(ctx context.Context, name string) ([]fs.DirEntry, error)
}

// File represents an open file, which will typically be the response body of a request.
type File interface {
	io.Reader
	io.Seeker
	io.Closer
}

// Instrumented wraps fs so that every operation is counted and traced
func Instrumented(fs VFS) VFS {
	return &instrumentedVFS{fs: fs}
}

type instrumentedVFS struct {
	fs VFS
}

func (i *instrumentedVFS) increment(operation string, err error) {
	metrics.VFSOperations.WithLabelValues(i.fs.Name(), operation, strconv.FormatBool(err == nil)).Inc()
}

func (i *instrumentedVFS) Root(ctx context.Context, path string) (Root, error) {
	root, err := i.fs.Root(ctx, path)

	i.increment("Root", err)

	if err != nil {
		log.WithField("vfs", i.fs.Name()).
			WithField("path", path).
			WithError(err).
			Traceln("Root call failed")

		return nil, err
	}

	return &instrumentedRoot{root: root, name: i.fs.Name(), path: path}, nil
}

func (i *instrumentedVFS) Name() string {
	return i.fs.Name()
}
