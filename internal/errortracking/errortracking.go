package errortracking

import (
	"net/http"

	"gitlab.com/gitlab-org/labkit/errortracking"
)

// CaptureOption alias to avoid importing labkit/errortracking in internal packages
type CaptureOption = errortracking.CaptureOption

// WithField alias to avoid importing labkit/errortracking in internal packages
func WithField(key, value string) CaptureOption {
	return errortracking.WithField(key, value)
}

// Initialize configures Sentry reporting. Captures are no-ops until this is called.
func Initialize(dsn, environment, version string) error {
	return errortracking.Initialize(
		errortracking.WithSentryDSN(dsn),
		errortracking.WithVersion(version),
		errortracking.WithLoggerName("shader-preview"),
		errortracking.WithSentryEnvironment(environment),
	)
}

// CaptureErrWithReqAndStackTrace calls labkit's errortracking function and attaches the request, stack trace and any additional fields
func CaptureErrWithReqAndStackTrace(err error, r *http.Request, fields ...CaptureOption) {
	opts := append(
		fields,
		errortracking.WithContext(r.Context()),
		errortracking.WithRequest(r),
		errortracking.WithStackTrace(),
	)

	errortracking.Capture(err, opts...)
}

// CaptureErrWithStackTrace calls labkit's errortracking function and attaches the stack trace and any additional fields
func CaptureErrWithStackTrace(err error, fields ...CaptureOption) {
	opts := append(
		fields,
		errortracking.WithStackTrace(),
	)

	errortracking.Capture(err, opts...)
}
