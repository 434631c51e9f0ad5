package local

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"gitlab.com/gitlab-org/shader-preview/internal/vfs"
)

type invalidPathError struct {
	rootPath    string
	requestPath string
}

func (e *invalidPathError) Error() string {
	return fmt.Sprintf("%q should be in %q", e.requestPath, e.rootPath)
}

// Root is a directory on the local disk. Symlinks are followed as long as
// their target stays inside the root.
type Root struct {
	rootPath string
}

func (r *Root) validatePath(path string) (string, string, error) {
	fullPath := filepath.Join(r.rootPath, path)

	if r.rootPath == fullPath {
		return fullPath, "", nil
	}

	vfsPath := strings.TrimPrefix(fullPath, r.rootPath+"/")

	// The requested path resolved to somewhere outside of the `r.rootPath` directory
	if fullPath == vfsPath {
		return "", "", &invalidPathError{rootPath: r.rootPath, requestPath: path}
	}

	return fullPath, vfsPath, nil
}

func (r *Root) resolvePath(path string) (string, error) {
	fullPath, _, err := r.validatePath(path)
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(fullPath)
	if err != nil {
		return "", err
	}

	if resolved != r.rootPath && !strings.HasPrefix(resolved, r.rootPath+"/") {
		return "", &invalidPathError{rootPath: r.rootPath, requestPath: path}
	}

	return resolved, nil
}

func (r *Root) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	fullPath, err := r.resolvePath(name)
	if err != nil {
		return nil, err
	}

	return os.Stat(fullPath)
}

func (r *Root) Open(ctx context.Context, name string) (vfs.File, error) {
	fullPath, err := r.resolvePath(name)
	if err != nil {
		return nil, err
	}

	return os.OpenFile(fullPath, os.O_RDONLY|unix.O_NOFOLLOW, 0)
}

func (r *Root) ReadDir(ctx context.Context, name string) ([]fs.DirEntry, error) {
	fullPath, err := r.resolvePath(name)
	if err != nil {
		return nil, err
	}

	return os.ReadDir(fullPath)
}
