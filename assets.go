package onboarding

import (
	"io/fs"

	"github.com/goliatone/go-onboarding/pkg/ui"
)

// AssetsFS exposes the stylesheet and runtime script the components expect,
// so Go applications can serve them without a frontend build step.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(onboarding.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return ui.AssetsFS()
}

// TemplatesFS exposes the built-in component templates so callers can copy
// and override them with ui.WithTemplatesDir.
func TemplatesFS() fs.FS {
	return ui.TemplatesFS()
}
