package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateAPI(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateSession(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateAPI(config *Config) []string {
	var validationErrors []string
	if config.API.BaseURL == "" {
		validationErrors = append(validationErrors, "api.base_url is required")
	} else if u, err := url.Parse(config.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		validationErrors = append(validationErrors, fmt.Sprintf("api.base_url %q is not an absolute URL", config.API.BaseURL))
	}
	if config.API.TimeoutSeconds <= 0 {
		validationErrors = append(validationErrors, "api.timeout_seconds must be positive")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	switch config.Logging.Level {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q must be one of trace, debug, info, warn, error", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "", "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format %q must be console or json", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	return validationErrors
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	switch config.Layout.Store {
	case LayoutStoreLocal, LayoutStoreRemote:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("layout.store %q must be local or remote", config.Layout.Store))
	}
	if f := config.Layout.DropCenterFraction; f <= 0 || f >= 1 {
		validationErrors = append(validationErrors, "layout.drop_center_fraction must be between 0 and 1 (exclusive)")
	}
	return validationErrors
}

func validateSession(config *Config) []string {
	if config.Session.SnapshotIntervalMs < 0 {
		return []string{"session.snapshot_interval_ms must be non-negative"}
	}
	return nil
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	colors := []struct{ key, value string }{
		{"appearance.accent_color", config.Appearance.AccentColor},
		{"appearance.muted_color", config.Appearance.MutedColor},
	}
	for _, c := range colors {
		if c.value != "" && !hexColorRe.MatchString(c.value) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s %q must be a #rrggbb color", c.key, c.value))
		}
	}
	return validationErrors
}
