package server

import "strings"

// originAllowed matches origin against patterns. A pattern may end in '*'
// to match any suffix, e.g. "http://localhost:*". An empty list allows all.
func originAllowed(patterns []string, origin string) bool {
	if len(patterns) == 0 || origin == "" {
		return true
	}
	for _, p := range patterns {
		if p == "*" || p == origin {
			return true
		}
		if prefix, ok := strings.CutSuffix(p, "*"); ok && strings.HasPrefix(origin, prefix) {
			return true
		}
	}
	return false
}
