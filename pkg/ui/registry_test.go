package ui

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistryDescriptorClone(t *testing.T) {
	reg := NewRegistry()
	renderer := func(buf *bytes.Buffer, view map[string]any, data ComponentData) error { return nil }

	if err := reg.Register("test", Descriptor{Renderer: renderer, Stylesheets: []string{"/a.css"}}); err != nil {
		t.Fatalf("register: %v", err)
	}

	desc, ok := reg.Descriptor("test")
	if !ok {
		t.Fatalf("descriptor not found")
	}

	desc.Stylesheets = append(desc.Stylesheets, "/mutated.css")

	original, _ := reg.Descriptor("test")
	if len(original.Stylesheets) != 1 || original.Stylesheets[0] != "/a.css" {
		t.Fatalf("registry descriptor mutated: %#v", original.Stylesheets)
	}
}

func TestRegistryRequiresTemplateOrRenderer(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("empty", Descriptor{}); err == nil {
		t.Fatalf("expected error for descriptor without template or renderer")
	}
	if err := reg.Register("  ", Descriptor{Template: "x"}); err == nil {
		t.Fatalf("expected error for blank name")
	}
	if err := reg.Register(" Custom ", Descriptor{Template: "custom"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, ok := reg.Descriptor("custom"); !ok {
		t.Fatalf("expected names to be normalized")
	}
}

func TestRegistryAssetsDeduplicates(t *testing.T) {
	reg := NewRegistry()

	reg.MustRegister("input", Descriptor{
		Template:    "input",
		Stylesheets: []string{"/shared.css", "/input.css"},
		Scripts: []Script{
			{Src: "/shared.js"},
		},
	})
	reg.MustRegister("select", Descriptor{
		Template:    "select",
		Stylesheets: []string{"/shared.css", "/select.css"},
		Scripts: []Script{
			{Src: "/shared.js"},
			{Src: "/select.js"},
		},
	})

	styles, scripts := reg.Assets([]string{"input", "select", "missing"})
	if diff := cmp.Diff([]string{"/shared.css", "/input.css", "/select.css"}, styles); diff != "" {
		t.Fatalf("stylesheets mismatch (-want +got):\n%s", diff)
	}
	if len(scripts) != 2 {
		t.Fatalf("expected 2 unique scripts, got %d: %v", len(scripts), scripts)
	}
}

func TestDefaultRegistryHasEveryComponent(t *testing.T) {
	reg := DefaultRegistry()
	want := append([]string(nil), builtinComponents...)
	got := reg.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d components, got %v", len(want), got)
	}
	styles, scripts := reg.Assets(got)
	if diff := cmp.Diff([]string{StylesheetName}, styles); diff != "" {
		t.Fatalf("stylesheets mismatch (-want +got):\n%s", diff)
	}
	if len(scripts) != 1 || scripts[0].Src != RuntimeScriptName {
		t.Fatalf("expected the runtime script once, got %v", scripts)
	}
}

func TestRegistryCloneIsolated(t *testing.T) {
	reg := DefaultRegistry()
	cloned := reg.Clone()
	cloned.MustRegister("extra", Descriptor{Template: "extra"})
	if _, ok := reg.Descriptor("extra"); ok {
		t.Fatalf("expected clone mutations not to leak")
	}
}
