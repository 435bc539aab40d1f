package config

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-onboarding/internal/logger"
)

// Validate checks the merged configuration.
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.Server.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidServerConfig)
	}
	if cfg.Server.ReadTimeout < 0 || cfg.Server.WriteTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidServerConfig)
	}

	if !strings.HasPrefix(cfg.App.AssetPrefix, "/") {
		return fmt.Errorf("%w: asset prefix %q must start with /", ErrInvalidAppConfig, cfg.App.AssetPrefix)
	}
	if cfg.App.ToastDuration < 0 {
		return fmt.Errorf("%w: toast duration must not be negative", ErrInvalidAppConfig)
	}

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfig, err)
	}
	switch cfg.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidLogConfig, cfg.Log.Format)
	}

	if cfg.Theme.Name == "" && (cfg.Theme.Variant != "" || len(cfg.Theme.Tokens) > 0) {
		return fmt.Errorf("%w: theme settings require a theme name", ErrInvalidThemeConfig)
	}
	if cfg.Theme.Variant != "" {
		if _, ok := cfg.Theme.Variants[cfg.Theme.Variant]; !ok {
			return fmt.Errorf("%w: unknown variant %q", ErrInvalidThemeConfig, cfg.Theme.Variant)
		}
	}
	return nil
}
