package config

import "github.com/spf13/pflag"

// BindFlags registers the configuration flags on fs and returns the Config
// they populate. Unset flags stay zero and fall through to lower priority
// sources.
func BindFlags(fs *pflag.FlagSet) *Config {
	cfg := &Config{}
	fs.StringVarP(&cfg.FilePath, "config", "c", "", "YAML configuration file")
	fs.StringVarP(&cfg.Server.Address, "address", "a", "", "listen address host:port")
	fs.DurationVar(&cfg.Server.ReadTimeout, "read-timeout", 0, "HTTP read timeout")
	fs.DurationVar(&cfg.Server.WriteTimeout, "write-timeout", 0, "HTTP write timeout")
	fs.StringVar(&cfg.App.AssetPrefix, "asset-prefix", "", "URL prefix for embedded assets")
	fs.StringVar(&cfg.App.TemplatesDir, "templates-dir", "", "directory with template overrides")
	fs.DurationVar(&cfg.App.ToastDuration, "toast-duration", 0, "default toast duration")
	fs.BoolVar(&cfg.App.DisableMetrics, "disable-metrics", false, "do not expose /metrics")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Log.Format, "log-format", "", "log format (json, console)")
	fs.StringVar(&cfg.Theme.Name, "theme", "", "theme name")
	fs.StringVar(&cfg.Theme.Variant, "theme-variant", "", "theme variant")
	return cfg
}
