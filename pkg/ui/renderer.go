package ui

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"strings"

	theme "github.com/goliatone/go-theme"

	rendertemplate "github.com/goliatone/go-onboarding/pkg/render/template"
	"github.com/goliatone/go-onboarding/pkg/render/template/gotemplate"
)

// Built-in component names.
const (
	ComponentButton         = "button"
	ComponentBadge          = "badge"
	ComponentProgress       = "progress"
	ComponentStepNavigation = "step-navigation"
	ComponentHeader         = "header"
	ComponentFooter         = "footer"
	ComponentInput          = "input"
	ComponentField          = "field"
	ComponentToasts         = "toasts"
	ComponentPage           = "page"
)

var builtinComponents = []string{
	ComponentButton, ComponentBadge, ComponentProgress, ComponentStepNavigation,
	ComponentHeader, ComponentFooter, ComponentInput, ComponentField,
	ComponentToasts, ComponentPage,
}

// DefaultAssetPrefix is where the embedded assets are expected to be served.
const DefaultAssetPrefix = "/assets"

// Component is anything the Renderer can draw. View returns the template
// context; composite components render their children through r.
type Component interface {
	ComponentName() string
	View(r *Renderer) (map[string]any, error)
}

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templatesDir     string
	templateRenderer rendertemplate.TemplateRenderer
	registry         *Registry
	theme            *theme.RendererConfig
	assetPrefix      string
}

// WithTemplatesFS replaces the embedded template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk ahead of the
// embedded bundle, so single templates can be overridden.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templatesDir = strings.TrimSpace(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithRegistry replaces the default component registry.
func WithRegistry(registry *Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithTheme applies a resolved go-theme configuration.
func WithTheme(themeCfg *theme.RendererConfig) Option {
	return func(cfg *config) {
		cfg.theme = themeCfg
	}
}

// WithAssetPrefix sets the URL prefix used for registry stylesheets and
// scripts.
func WithAssetPrefix(prefix string) Option {
	return func(cfg *config) {
		cfg.assetPrefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	}
}

// Renderer draws components through the template engine. It is safe for
// concurrent use once constructed.
type Renderer struct {
	templates   rendertemplate.TemplateRenderer
	registry    *Registry
	theme       *theme.RendererConfig
	assetPrefix string
}

// New constructs a renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:  TemplatesFS(),
		assetPrefix: DefaultAssetPrefix,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.registry == nil {
		cfg.registry = DefaultRegistry()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		opts := []gotemplate.Option{
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		}
		if cfg.templatesDir != "" {
			opts = append(opts, gotemplate.WithBaseDir(cfg.templatesDir))
		}
		engine, err := gotemplate.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("ui: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:   renderer,
		registry:    cfg.registry,
		theme:       cfg.theme,
		assetPrefix: cfg.assetPrefix,
	}, nil
}

// Registry exposes the component registry in use.
func (r *Renderer) Registry() *Registry {
	return r.registry
}

// Theme returns the applied theme configuration, if any.
func (r *Renderer) Theme() *theme.RendererConfig {
	return r.theme
}

// Render draws c and returns the markup.
func (r *Renderer) Render(c Component) (string, error) {
	var buf bytes.Buffer
	if err := r.render(&buf, c); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderTo draws c into w.
func (r *Renderer) RenderTo(w io.Writer, c Component) error {
	var buf bytes.Buffer
	if err := r.render(&buf, c); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) render(buf *bytes.Buffer, c Component) error {
	if r == nil || r.templates == nil {
		return fmt.Errorf("ui: renderer is nil")
	}
	if c == nil {
		return fmt.Errorf("ui: component is nil")
	}
	name := c.ComponentName()
	descriptor, ok := r.registry.Descriptor(name)
	if !ok {
		return fmt.Errorf("ui: component %q not registered", name)
	}

	view, err := c.View(r)
	if err != nil {
		return fmt.Errorf("ui: %s view: %w", name, err)
	}

	data := ComponentData{
		Template: r.templates,
		Partial:  r.partial(descriptor),
		Theme:    r.theme,
	}
	fn := descriptor.Renderer
	if fn == nil {
		fn = renderTemplate
	}
	if err := fn(buf, view, data); err != nil {
		return fmt.Errorf("ui: render %s: %w", name, err)
	}
	return nil
}

func renderTemplate(buf *bytes.Buffer, view map[string]any, data ComponentData) error {
	_, err := data.Template.RenderTemplate(data.Partial, view, buf)
	return err
}

// partial picks the theme override for a component, falling back to the
// descriptor template.
func (r *Renderer) partial(descriptor Descriptor) string {
	if r.theme != nil {
		if override := strings.TrimSpace(r.theme.Partials[PartialPrefix+descriptor.Name]); override != "" {
			return override
		}
	}
	return descriptor.Template
}

// assetURL prefixes relative asset names.
func (r *Renderer) assetURL(name string) string {
	if strings.Contains(name, "://") || strings.HasPrefix(name, "/") {
		return name
	}
	return r.assetPrefix + "/" + name
}
