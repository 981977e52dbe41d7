package entities

import (
	"fmt"
	"strings"
)

// Marker tags a scenario or test for selection, mirroring the marker-based
// filtering surface of the upstream test runner.
type Marker string

const (
	MarkerSmoke      Marker = "smoke"
	MarkerRegression Marker = "regression"
	MarkerSlow       Marker = "slow"
)

// MarkerFilter selects scenarios by marker. An empty filter matches everything.
// Exclusions win over inclusions.
type MarkerFilter struct {
	Include []Marker
	Exclude []Marker
}

// ParseMarkerFilter parses a comma-separated filter expression, e.g.
// "smoke", "smoke,regression", or "regression,not slow".
func ParseMarkerFilter(expr string) (MarkerFilter, error) {
	var f MarkerFilter
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		if part == "not" {
			return MarkerFilter{}, fmt.Errorf("invalid marker filter term %q", part)
		}
		if rest, ok := strings.CutPrefix(part, "not "); ok {
			rest = strings.TrimSpace(rest)
			if rest == "" {
				return MarkerFilter{}, fmt.Errorf("invalid marker filter term %q", part)
			}
			f.Exclude = append(f.Exclude, Marker(rest))
			continue
		}
		if strings.ContainsAny(part, " \t") {
			return MarkerFilter{}, fmt.Errorf("invalid marker filter term %q", part)
		}
		f.Include = append(f.Include, Marker(part))
	}
	return f, nil
}

// Matches reports whether a scenario with the given markers should run.
func (f MarkerFilter) Matches(markers []Marker) bool {
	for _, ex := range f.Exclude {
		for _, m := range markers {
			if m == ex {
				return false
			}
		}
	}
	if len(f.Include) == 0 {
		return true
	}
	for _, in := range f.Include {
		for _, m := range markers {
			if m == in {
				return true
			}
		}
	}
	return false
}
