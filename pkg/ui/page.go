package ui

import (
	"strings"
)

// ThemeStylesheetKey is the go-theme asset key for an extra stylesheet.
const ThemeStylesheetKey = "onboarding.stylesheet"

// Page composes the full document: header, step body, navigation, toasts
// and footer. Body is trusted markup produced by the caller, usually other
// rendered components.
type Page struct {
	Title      string
	Header     Header
	Body       string
	Navigation *StepNavigation
	Toasts     ToastViewport
	Footer     Footer
	// FormAction wraps body and navigation in a POST form targeting it.
	FormAction string
	Class      string
}

func (Page) ComponentName() string { return ComponentPage }

func (p Page) View(r *Renderer) (map[string]any, error) {
	header, err := r.Render(p.Header)
	if err != nil {
		return nil, err
	}
	footer, err := r.Render(p.Footer)
	if err != nil {
		return nil, err
	}
	toasts, err := r.Render(p.Toasts)
	if err != nil {
		return nil, err
	}

	view := map[string]any{
		"class":      ClassNames("ob-page", p.Class),
		"title":      strings.TrimSpace(p.Title),
		"header":     header,
		"body":       p.Body,
		"footer":     footer,
		"toasts":     toasts,
		"formAction": strings.TrimSpace(p.FormAction),
	}
	if p.Navigation != nil {
		nav, err := r.Render(*p.Navigation)
		if err != nil {
			return nil, err
		}
		view["navigation"] = nav
	}

	styles, scripts := r.registry.Assets(r.registry.Names())
	stylesheets := make([]string, 0, len(styles)+1)
	for _, href := range styles {
		stylesheets = append(stylesheets, r.assetURL(href))
	}
	if r.theme != nil {
		view["themeName"] = r.theme.Theme
		view["themeVariant"] = r.theme.Variant
		view["themeStyle"] = cssVarsStyle(r.theme.CSSVars)
		if r.theme.AssetURL != nil {
			if href := r.theme.AssetURL(ThemeStylesheetKey); href != "" {
				stylesheets = append(stylesheets, href)
			}
		}
	}
	view["stylesheets"] = stylesheets

	scriptViews := make([]map[string]any, 0, len(scripts))
	for _, script := range scripts {
		item := map[string]any{
			"defer":  script.Defer,
			"module": script.Module,
			"inline": script.Inline,
		}
		if script.Src != "" {
			item["src"] = r.assetURL(script.Src)
		}
		scriptViews = append(scriptViews, item)
	}
	view["scripts"] = scriptViews
	return view, nil
}
