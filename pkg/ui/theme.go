package ui

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// PartialPrefix namespaces component keys in theme template maps, e.g.
// "onboarding.button".
const PartialPrefix = "onboarding."

// ErrThemeNotFound is returned when a selector cannot satisfy a request.
var ErrThemeNotFound = errors.New("ui: theme not found")

// ThemeSelector resolves a theme name and variant into a go-theme selection.
type ThemeSelector interface {
	Select(name, variant string, opts ...theme.QueryOption) (*theme.Selection, error)
}

// ManifestSelector serves a single manifest. An empty name selects it, and an
// empty variant selects the base tokens.
type ManifestSelector struct {
	Manifest *theme.Manifest
}

func (s ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if s.Manifest == nil {
		return nil, fmt.Errorf("%w: no manifest configured", ErrThemeNotFound)
	}
	name = strings.TrimSpace(name)
	if name != "" && name != s.Manifest.Name {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	variant = strings.TrimSpace(variant)
	if variant != "" {
		if _, ok := s.Manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w: variant %q of %q", ErrThemeNotFound, variant, s.Manifest.Name)
		}
	}
	return &theme.Selection{
		Theme:    s.Manifest.Name,
		Variant:  variant,
		Manifest: s.Manifest,
	}, nil
}

// DefaultPartials maps every built-in component key to its embedded template.
func DefaultPartials() map[string]string {
	out := make(map[string]string, len(builtinComponents))
	for _, name := range builtinComponents {
		out[PartialPrefix+name] = name
	}
	return out
}

// ResolveTheme flattens a selection into renderer configuration. Variant
// tokens, templates and asset files override the base manifest, which in turn
// overrides fallbacks.
func ResolveTheme(selection *theme.Selection, fallbacks map[string]string) (*theme.RendererConfig, error) {
	if selection == nil || selection.Manifest == nil {
		return nil, fmt.Errorf("%w: empty selection", ErrThemeNotFound)
	}
	manifest := selection.Manifest

	var variant theme.Variant
	if selection.Variant != "" {
		v, ok := manifest.Variants[selection.Variant]
		if !ok {
			return nil, fmt.Errorf("%w: variant %q of %q", ErrThemeNotFound, selection.Variant, manifest.Name)
		}
		variant = v
	}

	partials := make(map[string]string)
	maps.Copy(partials, fallbacks)
	maps.Copy(partials, manifest.Templates)
	maps.Copy(partials, variant.Templates)

	tokens := make(map[string]string)
	maps.Copy(tokens, manifest.Tokens)
	maps.Copy(tokens, variant.Tokens)

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars[cssVarName(key)] = value
	}

	files := make(map[string]string)
	maps.Copy(files, manifest.Assets.Files)
	maps.Copy(files, variant.Assets.Files)
	prefix := manifest.Assets.Prefix
	if variant.Assets.Prefix != "" {
		prefix = variant.Assets.Prefix
	}

	name := selection.Theme
	if name == "" {
		name = manifest.Name
	}

	return &theme.RendererConfig{
		Theme:    name,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: assetResolver(prefix, files),
	}, nil
}

// SelectTheme runs selector and resolves the result against the built-in
// partials.
func SelectTheme(selector ThemeSelector, name, variant string) (*theme.RendererConfig, error) {
	if selector == nil {
		return nil, fmt.Errorf("%w: no selector", ErrThemeNotFound)
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, err
	}
	return ResolveTheme(selection, DefaultPartials())
}

func cssVarName(token string) string {
	token = strings.TrimSpace(token)
	if strings.HasPrefix(token, "--") {
		return token
	}
	return "--" + token
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		if strings.Contains(file, "://") || strings.HasPrefix(file, "/") || prefix == "" {
			return file
		}
		return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
	}
}

// cssVarsStyle renders CSS variables as a :root rule with sorted keys.
func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := slices.Sorted(maps.Keys(vars))
	var b strings.Builder
	b.WriteString(":root{")
	for _, key := range keys {
		value := strings.TrimSpace(vars[key])
		if value == "" || strings.ContainsAny(value+key, "{}<>;") {
			continue
		}
		b.WriteString(key)
		b.WriteByte(':')
		b.WriteString(value)
		b.WriteByte(';')
	}
	b.WriteString("}")
	return b.String()
}
