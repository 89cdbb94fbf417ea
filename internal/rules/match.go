package rules

import "strings"

// Attributes are the five matchable properties extracted from a window.
type Attributes struct {
	Class   string
	Title   string
	Role    string
	Process string
	Type    string
}

// Matches reports whether every present matcher accepts the corresponding
// attribute. Absent matchers are vacuously true, so the result is the AND of
// all five. Regex matchers search anywhere in the input; the window type is
// compared case-insensitively for exact equality.
func (r *CompiledRule) Matches(attrs Attributes) bool {
	if r.Class != nil && !r.Class.MatchString(attrs.Class) {
		return false
	}
	if r.Title != nil && !r.Title.MatchString(attrs.Title) {
		return false
	}
	if r.Role != nil && !r.Role.MatchString(attrs.Role) {
		return false
	}
	if r.Process != nil && !r.Process.MatchString(attrs.Process) {
		return false
	}
	if r.WindowType != "" && !strings.EqualFold(r.WindowType, attrs.Type) {
		return false
	}
	return true
}
