// Package template defines the renderer-agnostic template seam used by the
// onboarding components. The gotemplate subpackage provides the pongo2
// implementation.
package template
