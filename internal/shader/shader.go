package shader

import (
	"context"
	"regexp"
	"strings"

	"gitlab.com/gitlab-org/shader-preview/internal/vfs"
)

// placeholder matches the assignment naming the active shader. Like the
// template authors write it, it has to fit on a single line.
var placeholder = regexp.MustCompile(`const CURRENT_SHADER = '.*?';`)

// Name returns the shader name a URL path refers to. Only a single bare path
// segment, one without any dot or slash once leading and trailing slashes are
// stripped, names a shader.
func Name(urlPath string) (string, bool) {
	name := strings.Trim(urlPath, "/")

	if name == "" || strings.ContainsAny(name, "./") {
		return "", false
	}

	return name, true
}

// Substitute replaces the first CURRENT_SHADER assignment in doc with one
// naming shader. Everything else in doc is left untouched. The returned bool
// reports whether a placeholder was found; without one doc is returned as is.
func Substitute(doc []byte, shader string) ([]byte, bool) {
	loc := placeholder.FindIndex(doc)
	if loc == nil {
		return doc, false
	}

	replacement := "const CURRENT_SHADER = '" + shader + "';"

	out := make([]byte, 0, len(doc)-(loc[1]-loc[0])+len(replacement))
	out = append(out, doc[:loc[0]]...)
	out = append(out, replacement...)
	out = append(out, doc[loc[1]:]...)

	return out, true
}

// List returns the names of all shaders found in dir, sorted by name. Files
// whose name could not be requested as a bare path segment are skipped.
func List(ctx context.Context, root vfs.Root, dir, extension string) ([]string, error) {
	entries, err := root.ReadDir(ctx, dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), extension) {
			continue
		}

		if name, ok := Name(strings.TrimSuffix(entry.Name(), extension)); ok {
			names = append(names, name)
		}
	}

	return names, nil
}
