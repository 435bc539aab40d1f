package ui

import "strings"

// ClassNames joins class lists into a single attribute value. Each argument
// may hold several space separated classes; blanks and repeats are dropped and
// first-seen order is kept.
func ClassNames(parts ...string) string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		for _, class := range strings.Fields(part) {
			if _, ok := seen[class]; ok {
				continue
			}
			seen[class] = struct{}{}
			out = append(out, class)
		}
	}
	return strings.Join(out, " ")
}

// when returns class if cond holds.
func when(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}
