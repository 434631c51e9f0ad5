package httperrors

import (
	"fmt"
	"net/http"

	"gitlab.com/gitlab-org/shader-preview/internal/errortracking"
	"gitlab.com/gitlab-org/shader-preview/internal/logging"
)

type content struct {
	status       int
	title        string
	statusString string
	header       string
	subHeader    string
}

var (
	content404 = content{
		http.StatusNotFound,
		"File not found (404)",
		"404",
		"File not found.",
		`<p>Nothing in the served directory matches this path, and it does not name a known shader.</p>`,
	}
	content414 = content{
		status:       http.StatusRequestURITooLong,
		title:        "Request URI Too Long (414)",
		statusString: "414",
		header:       "Request URI Too Long.",
		subHeader:    `<p>The URI provided was too long for the server to process.</p>`,
	}
	content500 = content{
		http.StatusInternalServerError,
		"Something went wrong (500)",
		"500",
		"Whoops, something went wrong.",
		`<p>Check the server console for details.</p>`,
	}
	content501 = content{
		http.StatusNotImplemented,
		"Unsupported method (501)",
		"501",
		"Unsupported method.",
		`<p>Only GET and HEAD requests are served.</p>`,
	}
)

const predefinedErrorPage = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>%v</title>
  <style>
    body { color: #666; text-align: center; font-family: sans-serif; margin: auto; }
    h1 { font-size: 56px; font-weight: 400; color: #456; }
    h3 { color: #456; font-size: 20px; font-weight: 400; }
  </style>
</head>
<body>
  <h1>%v</h1>
  <h3>%v</h3>
  %v
</body>
</html>
`

func generateErrorHTML(c content) string {
	return fmt.Sprintf(predefinedErrorPage, c.title, c.statusString, c.header, c.subHeader)
}

func serveErrorPage(w http.ResponseWriter, c content) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(c.status)
	fmt.Fprintln(w, generateErrorHTML(c))
}

// Serve404 returns a 404 error response / HTML page to the http.ResponseWriter
func Serve404(w http.ResponseWriter) {
	serveErrorPage(w, content404)
}

// Serve414 returns a 414 error response / HTML page to the http.ResponseWriter
func Serve414(w http.ResponseWriter) {
	serveErrorPage(w, content414)
}

// Serve500 returns a 500 error response / HTML page to the http.ResponseWriter
func Serve500(w http.ResponseWriter) {
	serveErrorPage(w, content500)
}

// Serve500WithRequest logs and captures err, then returns a 500 error page
func Serve500WithRequest(w http.ResponseWriter, r *http.Request, reason string, err error) {
	logging.LogRequest(r).WithError(err).Error(reason)
	errortracking.CaptureErrWithReqAndStackTrace(err, r)
	Serve500(w)
}

// Serve501 returns a 501 error response / HTML page to the http.ResponseWriter
func Serve501(w http.ResponseWriter) {
	serveErrorPage(w, content501)
}
