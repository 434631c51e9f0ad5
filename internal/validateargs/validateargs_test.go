package validateargs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidParams(t *testing.T) {
	args := []string{"shader-preview",
		"-port", "3010",
		"-sentry-environment", "development",
		"-shaders-dir", "glsl"}
	require.NoError(t, Sensitive(args))
}

func TestSensitiveParams(t *testing.T) {
	tests := map[string][]string{
		"Sentry DSN passed":              {"shader-preview", "-sentry-dsn", "abc123"},
		"Sentry DSN using key=value":     {"shader-preview", "-sentry-dsn=abc123"},
		"Sentry DSN with double dash":    {"shader-preview", "--sentry-dsn", "abc123"},
		"Sentry DSN after other options": {"shader-preview", "-port", "3010", "-sentry-dsn=abc123"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			err := Sensitive(args)
			require.EqualError(t, err, "-sentry-dsn should not be passed as a command line argument")
		})
	}
}
