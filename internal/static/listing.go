package static

import (
	"bytes"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"gitlab.com/gitlab-org/shader-preview/internal/httperrors"
	"gitlab.com/gitlab-org/shader-preview/internal/logging"
	"gitlab.com/gitlab-org/shader-preview/metrics"
)

var listingTemplate = template.Must(template.New("listing").Parse(`<!DOCTYPE HTML>
<html>
<head>
<meta charset="utf-8">
<title>Directory listing for {{.Path}}</title>
</head>
<body>
<h1>Directory listing for {{.Path}}</h1>
<hr>
<ul>
{{- range .Entries}}
<li><a href="{{.Href}}">{{.Name}}</a>{{if .Size}} <small>{{.Size}}, {{.Modified}}</small>{{end}}</li>
{{- end}}
</ul>
<hr>
</body>
</html>
`))

type listing struct {
	Path    string
	Entries []listingEntry
}

type listingEntry struct {
	Name     string
	Href     string
	Size     string
	Modified string
}

func (h *Handler) serveListing(w http.ResponseWriter, r *http.Request, name string) {
	entries, err := h.root.ReadDir(r.Context(), name)
	if err != nil {
		logging.LogRequest(r).WithError(err).Warn("failed to list directory")
		httperrors.Serve404(w)
		return
	}

	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	data := listing{Path: r.URL.Path}
	for _, entry := range entries {
		data.Entries = append(data.Entries, newListingEntry(entry))
	}

	var buf bytes.Buffer
	if err := listingTemplate.Execute(&buf, data); err != nil {
		httperrors.Serve500WithRequest(w, r, "failed to render directory listing", err)
		return
	}

	metrics.DirectoryListings.Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)

	if r.Method != http.MethodHead {
		w.Write(buf.Bytes())
	}
}

// newListingEntry appends "/" to directories and "@" to symlinks, the way
// classic directory listings mark them
func newListingEntry(entry fs.DirEntry) listingEntry {
	name := entry.Name()
	href := "./" + url.PathEscape(name)

	switch {
	case entry.IsDir():
		return listingEntry{Name: name + "/", Href: href + "/"}
	case entry.Type()&fs.ModeSymlink != 0:
		return listingEntry{Name: name + "@", Href: href}
	}

	e := listingEntry{Name: name, Href: href}
	if info, err := entry.Info(); err == nil {
		e.Size = humanize.Bytes(uint64(info.Size()))
		e.Modified = humanize.Time(info.ModTime())
	}

	return e
}
