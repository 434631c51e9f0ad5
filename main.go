package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"gitlab.com/gitlab-org/go-mimedb"

	cfg "gitlab.com/gitlab-org/shader-preview/internal/config"
	"gitlab.com/gitlab-org/shader-preview/internal/errortracking"
	"gitlab.com/gitlab-org/shader-preview/internal/logging"
	"gitlab.com/gitlab-org/shader-preview/metrics"
)

// VERSION stores the information about the semantic version of application
var VERSION = "dev"

// REVISION stores the information about the git revision of application
var REVISION = "HEAD"

func initErrorReporting(sentryDSN, sentryEnvironment string) {
	if err := errortracking.Initialize(sentryDSN, sentryEnvironment, fmt.Sprintf("%s-%s", VERSION, REVISION)); err != nil {
		log.WithError(err).Warn("failed to initialize error reporting")
	}
}

func appMain() {
	config, err := cfg.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load config")
	}

	printVersion(config.General.ShowVersion, VERSION)

	if err := logging.ConfigureLogging(config.Log.Format, config.Log.Verbose); err != nil {
		log.WithError(err).Fatal("Failed to initialize logging")
	}

	if config.Sentry.DSN != "" {
		initErrorReporting(config.Sentry.DSN, config.Sentry.Environment)
	}

	log.WithFields(log.Fields{
		"version":  VERSION,
		"revision": REVISION,
	}).Print("Shader preview server")

	cfg.LogConfig(config)

	if err := mimedb.LoadTypes(); err != nil {
		log.WithError(err).Warn("Loading extended MIME database failed")
	}

	addExtraMIMETypes()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runApp(ctx, config); err != nil {
		errortracking.CaptureErrWithStackTrace(err)
		log.WithError(err).Fatal("Server failed")
	}
}

func printVersion(showVersion bool, version string) {
	if showVersion {
		fmt.Fprintf(os.Stdout, "%s\n", version)
		os.Exit(0)
	}
}

func main() {
	log.SetOutput(os.Stderr)

	metrics.MustRegister()

	appMain()
}
