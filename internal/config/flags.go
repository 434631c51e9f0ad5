package config

import (
	"time"

	"github.com/namsral/flag"
)

// Every flag can also be set through the environment: -port reads PORT,
// -shaders-dir reads SHADERS_DIR and so on.
var (
	port            = flag.Int("port", 8000, "The TCP port to listen on for HTTP requests")
	listenHTTP      = flag.String("listen-http", "", "The address to listen on for HTTP requests, overrides -port when set")
	rootDir         = flag.String("root-dir", ".", "The directory static files are served from")
	shadersDir      = flag.String("shaders-dir", "shaders", "The directory, relative to -root-dir, that holds the shader sources")
	shaderExtension = flag.String("shader-extension", ".glsl", "The file extension of shader sources")
	templatePath    = flag.String("template", "shader.html", "The HTML template, relative to -root-dir, rendered for shader requests")
	statusPath      = flag.String("status-path", "", "The url path for a status page, e.g., /-/healthcheck")

	metricsAddress    = flag.String("metrics-address", "", "The address to listen on for metrics requests")
	sentryDSN         = flag.String("sentry-dsn", "", "The address for sending sentry crash reporting to")
	sentryEnvironment = flag.String("sentry-environment", "", "The environment for sentry crash reporting")
	logFormat         = flag.String("log-format", "text", "The log output format: 'text' or 'json'")
	logVerbose        = flag.Bool("log-verbose", false, "Verbose logging")

	maxConns     = flag.Int("max-conns", 0, "Limit on the number of concurrent connections to the HTTP listener, 0 for unlimited")
	maxURILength = flag.Int("max-uri-length", 2048, "Limit the length of URI, 0 for unlimited.")

	// HTTP server timeouts
	serverReadTimeout       = flag.Duration("server-read-timeout", 5*time.Second, "ReadTimeout is the maximum duration for reading the entire request, including the body. A zero or negative value means there will be no timeout.")
	serverReadHeaderTimeout = flag.Duration("server-read-header-timeout", time.Second, "ReadHeaderTimeout is the amount of time allowed to read request headers. A zero or negative value means there will be no timeout.")
	serverWriteTimeout      = flag.Duration("server-write-timeout", 0, "WriteTimeout is the maximum duration before timing out writes of the response. A zero or negative value means there will be no timeout.")
	serverShutdownTimeout   = flag.Duration("server-shutdown-timeout", 5*time.Second, "Server shutdown timeout")

	disableCrossOriginRequests = flag.Bool("disable-cross-origin-requests", false, "Disable cross-origin requests")

	showVersion = flag.Bool("version", false, "Show version")

	// See initFlags()
	header = MultiStringFlag{separator: ";;"}
)

// initFlags will be called from LoadConfig
func initFlags() {
	flag.Var(&header, "header", "The additional http header(s) that should be send to the client")

	// read from -config=/path/to/shader-preview-config
	flag.String(flag.DefaultConfigFlagname, "", "path to config file")

	flag.Parse()
}
