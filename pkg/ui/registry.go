package ui

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"

	rendertemplate "github.com/goliatone/go-onboarding/pkg/render/template"
)

// RenderFunc writes a component into buf from its view data. The default
// implementation executes data.Partial through data.Template.
type RenderFunc func(buf *bytes.Buffer, view map[string]any, data ComponentData) error

// ComponentData carries the helpers a RenderFunc needs.
type ComponentData struct {
	Template rendertemplate.TemplateRenderer
	// Partial is the template resolved for this render, after theme overrides.
	Partial string
	Theme   *theme.RendererConfig
}

// Script describes a JavaScript dependency emitted once per page.
type Script struct {
	Src    string
	Inline string
	Defer  bool
	Module bool
}

// Descriptor bundles a component template with its asset dependencies.
type Descriptor struct {
	Name        string
	Template    string
	Renderer    RenderFunc
	Stylesheets []string
	Scripts     []Script
}

// Registry tracks component descriptors keyed by name. Callers can register new
// components or override defaults.
type Registry struct {
	mu         sync.RWMutex
	components map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		components: make(map[string]Descriptor),
	}
}

// DefaultRegistry returns a registry holding every built-in component.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	styles := []string{StylesheetName}
	runtime := []Script{{Src: RuntimeScriptName, Defer: true}}

	for _, name := range []string{
		ComponentButton, ComponentBadge, ComponentProgress, ComponentHeader,
		ComponentFooter, ComponentField, ComponentPage,
	} {
		reg.MustRegister(name, Descriptor{Template: name, Stylesheets: styles})
	}
	for _, name := range []string{ComponentStepNavigation, ComponentInput, ComponentToasts} {
		reg.MustRegister(name, Descriptor{Template: name, Stylesheets: styles, Scripts: runtime})
	}
	return reg
}

// Clone returns a deep copy of the registry to allow isolated mutations.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for name, descriptor := range r.components {
		cloned.components[name] = cloneDescriptor(descriptor)
	}
	return cloned
}

// Register associates a descriptor with the provided name. Existing entries are
// replaced. A descriptor without a Renderer must name a Template.
func (r *Registry) Register(name string, descriptor Descriptor) error {
	if name = normalize(name); name == "" {
		return fmt.Errorf("ui: component name is required")
	}
	descriptor.Template = strings.TrimSpace(descriptor.Template)
	if descriptor.Renderer == nil && descriptor.Template == "" {
		return fmt.Errorf("ui: component %q needs a template or renderer", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	descriptor.Name = name
	r.components[name] = cloneDescriptor(descriptor)
	return nil
}

// MustRegister mirrors Register but panics on error, simplifying default registry
// setup.
func (r *Registry) MustRegister(name string, descriptor Descriptor) {
	if err := r.Register(name, descriptor); err != nil {
		panic(err)
	}
}

// Descriptor fetches a descriptor by name.
func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.components[normalize(name)]
	if !ok {
		return Descriptor{}, false
	}
	return cloneDescriptor(descriptor), true
}

// Names returns a sorted slice of registered component names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Assets resolves dependency aggregates for the provided component names.
func (r *Registry) Assets(names []string) (stylesheets []string, scripts []Script) {
	if len(names) == 0 {
		return nil, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	seenStyles := make(map[string]struct{})
	seenScripts := make(map[string]struct{})

	for _, name := range names {
		descriptor, ok := r.components[normalize(name)]
		if !ok {
			continue
		}
		for _, href := range descriptor.Stylesheets {
			if href == "" {
				continue
			}
			if _, exists := seenStyles[href]; exists {
				continue
			}
			seenStyles[href] = struct{}{}
			stylesheets = append(stylesheets, href)
		}
		for _, script := range descriptor.Scripts {
			key := scriptKey(script)
			if _, exists := seenScripts[key]; exists {
				continue
			}
			seenScripts[key] = struct{}{}
			scripts = append(scripts, script)
		}
	}
	return stylesheets, scripts
}

func cloneDescriptor(src Descriptor) Descriptor {
	return Descriptor{
		Name:        src.Name,
		Template:    src.Template,
		Renderer:    src.Renderer,
		Stylesheets: slices.Clone(src.Stylesheets),
		Scripts:     slices.Clone(src.Scripts),
	}
}

func scriptKey(script Script) string {
	if script.Src != "" {
		return "src:" + script.Src
	}
	return "inline:" + script.Inline
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
