package testhelpers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/gitlab-org/shader-preview/internal/vfs"
	"gitlab.com/gitlab-org/shader-preview/internal/vfs/local"
)

var fs = vfs.Instrumented(&local.VFS{})

// TmpDir creates a temporary directory and returns it both as a vfs.Root and
// as a path on disk
func TmpDir(tb testing.TB) (vfs.Root, string) {
	tb.Helper()

	var err error
	tmpDir := tb.TempDir()

	// On some systems `/tmp` can be a symlink
	tmpDir, err = filepath.EvalSymlinks(tmpDir)
	require.NoError(tb, err)

	root, err := fs.Root(context.Background(), tmpDir)
	require.NoError(tb, err)

	return root, tmpDir
}

// WriteFiles creates files below dir, creating parent directories as needed.
// Keys are slash separated paths relative to dir.
func WriteFiles(tb testing.TB, dir string, files map[string]string) {
	tb.Helper()

	for name, contents := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))

		require.NoError(tb, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(tb, os.WriteFile(path, []byte(contents), 0644))
	}
}
