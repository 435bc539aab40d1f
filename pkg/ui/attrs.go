package ui

import (
	"maps"
	"slices"
	"strings"
)

// attrList turns extra attributes into a sorted list of name/value pairs.
// Only data-*, aria-* and a few safe names pass; event handlers never do.
func attrList(attrs map[string]string) []map[string]string {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]map[string]string, 0, len(attrs))
	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		key := strings.ToLower(strings.TrimSpace(name))
		if !allowedAttr(key) {
			continue
		}
		out = append(out, map[string]string{"name": key, "value": attrs[name]})
	}
	return out
}

func allowedAttr(name string) bool {
	if strings.HasPrefix(name, "data-") || strings.HasPrefix(name, "aria-") {
		return !strings.ContainsAny(name, " \"'<>=/")
	}
	switch name {
	case "id", "title", "form", "formaction", "formnovalidate", "role", "tabindex", "inputmode", "pattern", "maxlength", "autocomplete":
		return true
	default:
		return false
	}
}
