package server

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
)

//go:embed openapi.yaml
var openAPISource []byte

// Operation is one documented API route.
type Operation struct {
	ID     string
	Method string
	Path   string
}

// LoadOpenAPI parses and validates the embedded API description.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(openAPISource)
	if err != nil {
		return nil, fmt.Errorf("server: load openapi: %w", err)
	}
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, fmt.Errorf("server: openapi document does not contain any paths")
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("server: validate openapi: %w", err)
	}
	return spec, nil
}

// Operations lists the documented operations sorted by path and method.
func Operations(spec *openapi3.T) []Operation {
	if spec == nil || spec.Paths == nil {
		return nil
	}
	var out []Operation
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			out = append(out, Operation{ID: op.OperationID, Method: strings.ToUpper(method), Path: path})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out
}

// checkDocumented reports documented operations the router cannot serve.
func checkDocumented(spec *openapi3.T, router chi.Routes) error {
	served := map[string]bool{}
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		served[method+" "+strings.TrimSuffix(route, "/")] = true
		return nil
	})
	if err != nil {
		return fmt.Errorf("server: walk routes: %w", err)
	}
	var missing []string
	for _, op := range Operations(spec) {
		if !served[op.Method+" "+op.Path] {
			missing = append(missing, op.Method+" "+op.Path)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("server: documented routes not served: %s", strings.Join(missing, ", "))
	}
	return nil
}
