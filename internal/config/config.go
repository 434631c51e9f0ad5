package config

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/namsral/flag"
	log "github.com/sirupsen/logrus"

	"gitlab.com/gitlab-org/shader-preview/internal/customheaders"
	"gitlab.com/gitlab-org/shader-preview/internal/validateargs"
)

// Config stores all the config options relevant to the shader preview server.
type Config struct {
	General   General
	Listeners Listeners
	Server    Server
	Log       Log
	Sentry    Sentry
}

// General groups settings that decide what gets served and how.
type General struct {
	// RootDir is the directory static files are served from. ShadersDir and
	// TemplatePath are relative to it.
	RootDir         string
	ShadersDir      string
	ShaderExtension string
	TemplatePath    string
	StatusPath      string

	CustomHeaders http.Header

	DisableCrossOriginRequests bool
	MaxConns                   int
	MaxURILength               int

	ShowVersion bool
}

// Listeners groups settings related to the addresses the server binds to
type Listeners struct {
	Port int
	// HTTP overrides the address derived from Port when set
	HTTP    string
	Metrics string
}

// HTTPAddress returns the address the HTTP listener binds to
func (l Listeners) HTTPAddress() string {
	if l.HTTP != "" {
		return l.HTTP
	}

	return net.JoinHostPort("", strconv.Itoa(l.Port))
}

// Server groups the http.Server timeouts
type Server struct {
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	ShutdownTimeout   time.Duration
}

// Log groups settings related to configuring logging
type Log struct {
	Format  string
	Verbose bool
}

// Sentry groups settings related to configuring Sentry
type Sentry struct {
	DSN         string
	Environment string
}

func loadConfig() (*Config, error) {
	config := &Config{
		General: General{
			RootDir:                    *rootDir,
			ShadersDir:                 *shadersDir,
			ShaderExtension:            *shaderExtension,
			TemplatePath:               *templatePath,
			StatusPath:                 *statusPath,
			DisableCrossOriginRequests: *disableCrossOriginRequests,
			MaxConns:                   *maxConns,
			MaxURILength:               *maxURILength,
			ShowVersion:                *showVersion,
		},
		Listeners: Listeners{
			Port:    *port,
			HTTP:    *listenHTTP,
			Metrics: *metricsAddress,
		},
		Server: Server{
			ReadTimeout:       *serverReadTimeout,
			ReadHeaderTimeout: *serverReadHeaderTimeout,
			WriteTimeout:      *serverWriteTimeout,
			ShutdownTimeout:   *serverShutdownTimeout,
		},
		Log: Log{
			Format:  *logFormat,
			Verbose: *logVerbose,
		},
		Sentry: Sentry{
			DSN:         *sentryDSN,
			Environment: *sentryEnvironment,
		},
	}

	headers, err := customheaders.ParseHeaderString(header.Split())
	if err != nil {
		return nil, err
	}
	config.General.CustomHeaders = headers

	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// LogConfig logs the effective configuration at debug level
func LogConfig(config *Config) {
	log.WithFields(log.Fields{
		"default-config-filename":       flag.DefaultConfigFlagname,
		"disable-cross-origin-requests": config.General.DisableCrossOriginRequests,
		"header":                        header.String(),
		"listen-http":                   config.Listeners.HTTPAddress(),
		"log-format":                    config.Log.Format,
		"log-verbose":                   config.Log.Verbose,
		"max-conns":                     config.General.MaxConns,
		"max-uri-length":                config.General.MaxURILength,
		"metrics-address":               config.Listeners.Metrics,
		"port":                          config.Listeners.Port,
		"root-dir":                      config.General.RootDir,
		"server-read-timeout":           config.Server.ReadTimeout,
		"server-read-header-timeout":    config.Server.ReadHeaderTimeout,
		"server-write-timeout":          config.Server.WriteTimeout,
		"server-shutdown-timeout":       config.Server.ShutdownTimeout,
		"shader-extension":              config.General.ShaderExtension,
		"shaders-dir":                   config.General.ShadersDir,
		"status-path":                   config.General.StatusPath,
		"template":                      config.General.TemplatePath,
	}).Debug("Start server with configuration")
}

// LoadConfig parses configuration settings passed as command line arguments,
// environment variables or via config file, and populates a Config object
// with those values
func LoadConfig() (*Config, error) {
	initFlags()
	warnSensitiveArgs(os.Args[1:])

	return loadConfig()
}

func warnSensitiveArgs(args []string) {
	if err := validateargs.Sensitive(args); err != nil {
		log.WithError(err).Warn("Using sensitive arguments, use SENTRY_DSN or -config=shader-preview-config file instead")
	}
}
