package states

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMountPath_JoinsBasePath(t *testing.T) {
	if got := MountPath("/onboarding"); got != "/onboarding/api/states" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("onboarding"); got != "/onboarding/api/states" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("/", WithRoutePath("lookup/states")); got != "/lookup/states" {
		t.Fatalf("unexpected mount path: %q", got)
	}
}

func TestComponent_RegisterRoutes(t *testing.T) {
	mux := http.NewServeMux()
	component := New(WithStates(sampleStates))
	pattern, err := component.RegisterRoutes(mux, "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pattern != "/api/states" {
		t.Fatalf("unexpected registered pattern: %q", pattern)
	}
	if got := component.Options().States; len(got) != len(sampleStates) {
		t.Fatalf("expected configured states, got %d", len(got))
	}

	req := httptest.NewRequest(http.MethodGet, pattern+"?q=nv", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRegisterRoutes_MissingMux(t *testing.T) {
	if _, err := RegisterRoutes(nil, "/"); err == nil {
		t.Fatalf("expected error for nil mux")
	}
}
