package rules

import (
	"regexp"
	"testing"
)

func TestMatches_AbsentMatchersArePermissive(t *testing.T) {
	rule := &CompiledRule{Class: regexp.MustCompile("kitty")}

	attrs := Attributes{
		Class:   "kitty",
		Title:   "anything at all",
		Role:    "browser",
		Process: "whatever",
		Type:    "dialog",
	}
	if !rule.Matches(attrs) {
		t.Fatalf("expected match: absent matchers must not constrain")
	}
}

func TestMatches_AllPresentMatchersMustAgree(t *testing.T) {
	rule := &CompiledRule{
		Class:   regexp.MustCompile("kitty"),
		Process: regexp.MustCompile("montauk"),
	}

	cases := []struct {
		name  string
		attrs Attributes
		want  bool
	}{
		{"both match", Attributes{Class: "kitty", Process: "montauk"}, true},
		{"class only", Attributes{Class: "kitty", Process: "other"}, false},
		{"process only", Attributes{Class: "other", Process: "montauk"}, false},
		{"neither", Attributes{Class: "a", Process: "b"}, false},
	}
	for _, tc := range cases {
		if got := rule.Matches(tc.attrs); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestMatches_PatternSearchesAnywhere(t *testing.T) {
	rule := &CompiledRule{Title: regexp.MustCompile("Mozilla")}
	if !rule.Matches(Attributes{Title: "Release Notes - Mozilla Firefox"}) {
		t.Fatalf("expected substring search to match")
	}
}

func TestMatches_CaseSensitivity(t *testing.T) {
	rule := &CompiledRule{Class: regexp.MustCompile("Firefox")}
	if rule.Matches(Attributes{Class: "firefox"}) {
		t.Fatalf("class matching must be case-sensitive")
	}

	typed := &CompiledRule{WindowType: "Dialog"}
	if !typed.Matches(Attributes{Type: "dialog"}) {
		t.Fatalf("window type matching must be case-insensitive")
	}
	if typed.Matches(Attributes{Type: "dialogue"}) {
		t.Fatalf("window type matching must be exact, not a substring search")
	}
}

func TestMatches_NoMatcherRuleMatchesEverything(t *testing.T) {
	// Validation rejects matcher-less rules before they reach the matcher;
	// the matcher itself treats one as vacuously true.
	rule := &CompiledRule{}
	if !rule.Matches(Attributes{}) {
		t.Fatalf("empty rule should be vacuously true")
	}
}
