package permission

import "strings"

const (
	// Wildcard matches any resource or action token.
	Wildcard = "*"

	// Separator splits the resource token from the action token.
	Separator = ":"
)

// Pattern is a granted permission. Either token may be the wildcard.
// The zero Pattern matches nothing.
type Pattern struct {
	Resource string
	Action   string
}

// Required is a literal permission demanded by an operation.
type Required struct {
	Resource string
	Action   string
}

// Parse converts a "resource:action" string into a Pattern.
// Strings without a separator, or with an empty token, produce the zero
// Pattern, which never matches. Parse never fails.
func Parse(s string) Pattern {
	resource, action, ok := strings.Cut(s, Separator)
	if !ok || resource == "" || action == "" {
		return Pattern{}
	}
	return Pattern{Resource: resource, Action: action}
}

// ParseAll converts a slice of "resource:action" strings into patterns,
// dropping malformed entries. Returns nil for empty input.
func ParseAll(grants []string) []Pattern {
	if len(grants) == 0 {
		return nil
	}
	patterns := make([]Pattern, 0, len(grants))
	for _, g := range grants {
		if p := Parse(g); p != (Pattern{}) {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// String returns the canonical "resource:action" form of the pattern.
// The zero Pattern renders as an empty string.
func (p Pattern) String() string {
	if p == (Pattern{}) {
		return ""
	}
	return p.Resource + Separator + p.Action
}

// matches reports whether a single granted pattern satisfies the
// required permission.
func (p Pattern) matches(req Required) bool {
	if p.Resource == Wildcard {
		// A resource wildcard grants every action; the action token is
		// intentionally not consulted ("*:create" still grants "orders:read").
		return true
	}
	if p.Resource != req.Resource {
		return false
	}
	return p.Action == Wildcard || p.Action == req.Action
}

// Matches reports whether any granted pattern satisfies the required
// permission. Pure function, safe for concurrent use.
func Matches(req Required, granted []Pattern) bool {
	for _, p := range granted {
		if p.matches(req) {
			return true
		}
	}
	return false
}
