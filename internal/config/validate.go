package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var (
	ErrInvalidPort            = errors.New("port must be between 1 and 65535")
	ErrNoRootDir              = errors.New("root-dir must be defined")
	ErrNoShadersDir           = errors.New("shaders-dir must be defined")
	ErrNoTemplate             = errors.New("template must be defined")
	ErrInvalidShaderExtension = errors.New("shader-extension must start with a dot and can not contain a slash")
	ErrInvalidStatusPath      = errors.New("status-path must start with a slash")
	ErrInvalidLogFormat       = errors.New("log-format must be either 'text' or 'json'")
	ErrInvalidMaxURILength    = errors.New("max-uri-length must be greater than or equal to 0")
	ErrInvalidMaxConns        = errors.New("max-conns must be greater than or equal to 0")
)

// Validate checks every setting and reports all problems at once
func Validate(config *Config) error {
	var result *multierror.Error

	result = multierror.Append(result, validateListenersConfig(config)...)
	result = multierror.Append(result, validateGeneralConfig(config)...)

	if f := config.Log.Format; f != "" && f != "text" && f != "json" {
		result = multierror.Append(result, fmt.Errorf("%w: got %q", ErrInvalidLogFormat, f))
	}

	return result.ErrorOrNil()
}

func validateListenersConfig(config *Config) []error {
	// an explicit address takes precedence over the port
	if config.Listeners.HTTP != "" {
		return nil
	}

	if config.Listeners.Port < 1 || config.Listeners.Port > 65535 {
		return []error{fmt.Errorf("%w: got %d", ErrInvalidPort, config.Listeners.Port)}
	}

	return nil
}

func validateGeneralConfig(config *Config) []error {
	var errs []error

	general := config.General

	if general.RootDir == "" {
		errs = append(errs, ErrNoRootDir)
	}

	if general.ShadersDir == "" {
		errs = append(errs, ErrNoShadersDir)
	}

	if general.TemplatePath == "" {
		errs = append(errs, ErrNoTemplate)
	}

	ext := general.ShaderExtension
	if !strings.HasPrefix(ext, ".") || len(ext) < 2 || strings.Contains(ext, "/") {
		errs = append(errs, fmt.Errorf("%w: got %q", ErrInvalidShaderExtension, ext))
	}

	if general.StatusPath != "" && !strings.HasPrefix(general.StatusPath, "/") {
		errs = append(errs, ErrInvalidStatusPath)
	}

	if general.MaxURILength < 0 {
		errs = append(errs, ErrInvalidMaxURILength)
	}

	if general.MaxConns < 0 {
		errs = append(errs, ErrInvalidMaxConns)
	}

	return errs
}
