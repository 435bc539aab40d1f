package states

import (
	"sort"
	"strings"

	"github.com/goliatone/go-onboarding/pkg/reference"
)

// Option is a value/label pair in the handler response.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Search matches query against state codes and names, case-insensitively.
// States whose code or name starts with the query sort ahead of those that
// only contain it; ties keep name order.
func Search(states []reference.State, query string, limit int, opts Options) []reference.State {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode == EmptySearchTop {
			if len(states) <= limit {
				return append([]reference.State{}, states...)
			}
			return append([]reference.State{}, states[:limit]...)
		}
		return nil
	}

	q := strings.ToLower(query)
	matches := make([]matchedState, 0, 8)
	for _, state := range states {
		code := strings.ToLower(state.Value)
		name := strings.ToLower(state.Label)
		if !strings.Contains(code, q) && !strings.Contains(name, q) {
			continue
		}
		matches = append(matches, matchedState{
			state:    state,
			isExact:  code == q,
			isPrefix: strings.HasPrefix(code, q) || strings.HasPrefix(name, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isExact != matches[j].isExact {
			return matches[i].isExact
		}
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].state.Label < matches[j].state.Label
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]reference.State, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.state)
	}
	return out
}

func SearchOptions(states []reference.State, query string, limit int, opts Options) []Option {
	results := Search(states, query, limit, opts)
	if len(results) == 0 {
		return nil
	}

	out := make([]Option, 0, len(results))
	for _, state := range results {
		out = append(out, Option{Value: state.Value, Label: state.Label})
	}
	return out
}

type matchedState struct {
	state    reference.State
	isExact  bool
	isPrefix bool
}
