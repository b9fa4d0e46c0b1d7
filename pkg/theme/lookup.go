// lookup.go — Find themes by id, with typo suggestions.
package theme

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Find returns the theme with the given id.
func Find(themes []Theme, id string) (Theme, bool) {
	for _, th := range themes {
		if th.ID == id {
			return th, true
		}
	}
	return Theme{}, false
}

// Suggest returns the theme id closest to id, or "" when nothing is close
// enough to be a plausible typo.
func Suggest(id string, themes []Theme) string {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return ""
	}
	best, bestDist := "", -1
	for _, th := range themes {
		dist := levenshtein.ComputeDistance(id, th.ID)
		if dist > levenshteinLimit(len(th.ID)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = th.ID, dist
		}
	}
	return best
}

// Select returns the themes named in ids, in the order given. A theme named
// twice is selected once. An unknown id is an error carrying a suggestion
// when one exists.
func Select(themes []Theme, ids []string) ([]Theme, error) {
	out := make([]Theme, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		th, ok := Find(themes, id)
		if !ok {
			if s := Suggest(id, themes); s != "" {
				return nil, fmt.Errorf("unknown theme %q (did you mean %q?)", id, s)
			}
			return nil, fmt.Errorf("unknown theme %q", id)
		}
		if _, dup := seen[th.ID]; dup {
			continue
		}
		seen[th.ID] = struct{}{}
		out = append(out, th)
	}
	return out, nil
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
