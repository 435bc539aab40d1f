package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-onboarding/components/states"
	"github.com/goliatone/go-onboarding/pkg/ui"
)

const (
	stepPathPrefix = "/onboarding/steps/"
	toastsPath     = "/api/toasts"
)

func (s *Server) routes() chi.Router {
	router := chi.NewRouter()
	router.Use(s.withTraceID)
	router.Use(s.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(s.withToasts)

	router.Get("/", s.index)
	router.Get(stepPathPrefix+"{step}", s.showStep)
	router.Post(stepPathPrefix+"{step}", s.submitStep)

	router.Post("/api/mask", s.applyMask)
	router.Post("/api/validate", s.validate)
	router.Get("/api/steps", s.listSteps)
	router.Get(toastsPath, s.listToasts)
	router.Post(toastsPath, s.addToast)
	router.Delete(toastsPath+"/{id}", s.removeToast)
	router.Get("/api/openapi.json", s.openAPI)

	// states.RegisterRoutes only fails on a nil mux.
	_, _ = states.RegisterRoutes(router, "")

	if s.metrics != nil {
		router.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	prefix := strings.TrimRight(s.cfg.App.AssetPrefix, "/")
	router.Handle(prefix+"/*", http.StripPrefix(prefix+"/", http.FileServerFS(ui.AssetsFS())))

	return router
}
