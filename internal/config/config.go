package config

import (
	"time"

	theme "github.com/goliatone/go-theme"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "ONBOARDING_"

// Config is the top level configuration.
type Config struct {
	Server Server `envPrefix:"SERVER_" yaml:"server"`
	App    App    `envPrefix:"APP_" yaml:"app"`
	Log    Log    `envPrefix:"LOG_" yaml:"log"`
	Theme  Theme  `envPrefix:"THEME_" yaml:"theme"`

	// FilePath points at the optional YAML file.
	// Env: ONBOARDING_CONFIG
	FilePath string `env:"CONFIG" yaml:"-"`
}

// Server holds the HTTP listener settings.
type Server struct {
	// Env: ONBOARDING_SERVER_ADDRESS
	Address         string        `env:"ADDRESS" yaml:"address"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" yaml:"read_timeout"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" yaml:"shutdown_timeout"`
}

// App holds presentation settings.
type App struct {
	// AssetPrefix is the URL path the embedded stylesheet and script are
	// served under.
	AssetPrefix string `env:"ASSET_PREFIX" yaml:"asset_prefix"`
	// TemplatesDir overrides embedded templates with files on disk.
	TemplatesDir string `env:"TEMPLATES_DIR" yaml:"templates_dir"`
	// ToastDuration is applied to toasts posted without a duration.
	ToastDuration  time.Duration `env:"TOAST_DURATION" yaml:"toast_duration"`
	DisableMetrics bool          `env:"DISABLE_METRICS" yaml:"disable_metrics"`
}

// Log selects the log level and output format.
type Log struct {
	Level string `env:"LEVEL" yaml:"level"`
	// Format is "json" or "console".
	Format string `env:"FORMAT" yaml:"format"`
}

// Theme is an inline go-theme manifest plus the variant to apply. An empty
// Name disables theming.
type Theme struct {
	Name        string                  `env:"NAME" yaml:"name"`
	Variant     string                  `env:"VARIANT" yaml:"variant"`
	Tokens      map[string]string       `env:"TOKENS" yaml:"tokens"`
	Templates   map[string]string       `env:"TEMPLATES" yaml:"templates"`
	AssetPrefix string                  `env:"ASSET_PREFIX" yaml:"asset_prefix"`
	Files       map[string]string       `env:"FILES" yaml:"files"`
	Variants    map[string]ThemeVariant `yaml:"variants"`
}

// ThemeVariant overrides parts of the base theme.
type ThemeVariant struct {
	Tokens      map[string]string `yaml:"tokens"`
	Templates   map[string]string `yaml:"templates"`
	AssetPrefix string            `yaml:"asset_prefix"`
	Files       map[string]string `yaml:"files"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Server: Server{
			Address:         ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		App: App{
			AssetPrefix:   "/assets",
			ToastDuration: 5 * time.Second,
		},
		Log: Log{
			Level:  "info",
			Format: "json",
		},
	}
}

// Manifest converts the theme section into a go-theme manifest, or nil when
// theming is disabled.
func (t Theme) Manifest() *theme.Manifest {
	if t.Name == "" {
		return nil
	}
	manifest := &theme.Manifest{
		Name:      t.Name,
		Tokens:    t.Tokens,
		Templates: t.Templates,
		Assets: theme.Assets{
			Prefix: t.AssetPrefix,
			Files:  t.Files,
		},
	}
	if len(t.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(t.Variants))
		for name, v := range t.Variants {
			manifest.Variants[name] = theme.Variant{
				Tokens:    v.Tokens,
				Templates: v.Templates,
				Assets: theme.Assets{
					Prefix: v.AssetPrefix,
					Files:  v.Files,
				},
			}
		}
	}
	return manifest
}
