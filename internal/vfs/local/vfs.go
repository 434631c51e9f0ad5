package local

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gitlab.com/gitlab-org/shader-preview/internal/vfs"
)

var errNotDirectory = errors.New("path needs to be a directory")

// VFS opens roots on the local disk
type VFS struct{}

// Root resolves path to an absolute directory without symlinks and returns a
// vfs.Root confined to it
func (localFs VFS) Root(ctx context.Context, path string) (vfs.Root, error) {
	rootPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	rootPath, err = filepath.EvalSymlinks(rootPath)
	if err != nil {
		return nil, fmt.Errorf("could not evaluate symlinks: %w", err)
	}

	fi, err := os.Lstat(rootPath)
	if err != nil {
		return nil, err
	}

	if !fi.Mode().IsDir() {
		return nil, errNotDirectory
	}

	return &Root{rootPath: rootPath}, nil
}

func (localFs VFS) Name() string {
	return "local"
}
