package rules

import (
	"strings"
	"testing"

	"github.com/1broseidon/winrules/internal/config"
)

func strPtr(s string) *string { return &s }

func TestParseDimension(t *testing.T) {
	cases := []struct {
		in      string
		percent bool
		pixels  int
		frac    float64
	}{
		{"50%", true, 0, 0.50},
		{"100%", true, 0, 1.0},
		{"800", false, 800, 0},
		{"-5", false, -5, 0},
	}
	for _, tc := range cases {
		d, err := ParseDimension(tc.in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.in, err)
		}
		if d.Percent != tc.percent {
			t.Fatalf("%q: percent = %v, want %v", tc.in, d.Percent, tc.percent)
		}
		if d.Percent && d.Frac != tc.frac {
			t.Fatalf("%q: frac = %v, want %v", tc.in, d.Frac, tc.frac)
		}
		if !d.Percent && d.Pixels != tc.pixels {
			t.Fatalf("%q: pixels = %d, want %d", tc.in, d.Pixels, tc.pixels)
		}
	}
}

func TestParseDimension_Rejects(t *testing.T) {
	for _, in := range []string{"abc%", "abc", "", "%"} {
		if _, err := ParseDimension(in); err == nil {
			t.Fatalf("%q: expected error", in)
		}
	}
}

func TestCompile_BadRegexRejectsWholeSet(t *testing.T) {
	cfg := &config.Config{Rules: []config.Rule{
		{Class: strPtr("firefox")},
		{Class: strPtr("([unclosed")},
	}}
	_, err := Compile(cfg)
	if err == nil {
		t.Fatalf("expected compile error for bad regex")
	}
	if !strings.Contains(err.Error(), "rule[1]") {
		t.Fatalf("error should name the failing rule, got: %v", err)
	}
}

func TestCompile_UnknownAnchorRejected(t *testing.T) {
	cfg := &config.Config{Rules: []config.Rule{{
		Class:    strPtr("firefox"),
		Position: &config.PositionValue{Named: "middle"},
	}}}
	if _, err := Compile(cfg); err == nil {
		t.Fatalf("expected error for unknown anchor name")
	}
}

func TestCompile_Targets(t *testing.T) {
	idx := uint32(1)
	ws := uint32(2)
	focus := true
	cfg := &config.Config{Rules: []config.Rule{{
		Class:     strPtr("^kitty$"),
		Workspace: &ws,
		Monitor:   &config.MonitorValue{Index: &idx},
		Position:  &config.PositionValue{Flexible: &[2]string{"25%", "50"}},
		Size:      &config.SizeValue{Absolute: &[2]uint32{800, 600}},
		Focus:     &focus,
	}}}

	compiled, err := Compile(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rule := compiled[0]

	if rule.Monitor == nil || rule.Monitor.Index == nil || *rule.Monitor.Index != 1 {
		t.Fatalf("monitor index not compiled: %+v", rule.Monitor)
	}
	if rule.Position == nil || rule.Position.Kind != PositionFlexible {
		t.Fatalf("expected flexible position, got %+v", rule.Position)
	}
	if !rule.Position.DimX.Percent || rule.Position.DimX.Frac != 0.25 {
		t.Fatalf("x dimension = %+v, want 25%%", rule.Position.DimX)
	}
	if rule.Position.DimY.Percent || rule.Position.DimY.Pixels != 50 {
		t.Fatalf("y dimension = %+v, want 50px", rule.Position.DimY)
	}
	if rule.Size == nil || rule.Size.Flexible || rule.Size.W != 800 || rule.Size.H != 600 {
		t.Fatalf("size = %+v, want absolute 800x600", rule.Size)
	}
	if rule.Workspace == nil || *rule.Workspace != 2 {
		t.Fatalf("workspace not carried over")
	}
	if rule.Focus == nil || !*rule.Focus {
		t.Fatalf("focus not carried over")
	}
	if !rule.Matches(Attributes{Class: "kitty"}) {
		t.Fatalf("anchored class pattern should match")
	}
}

func TestCompile_AnchorNames(t *testing.T) {
	for name, want := range anchorNames {
		cfg := &config.Config{Rules: []config.Rule{{
			Class:    strPtr("x"),
			Position: &config.PositionValue{Named: name},
		}}}
		compiled, err := Compile(cfg)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if compiled[0].Position.Anchor != want {
			t.Fatalf("%s: anchor = %v, want %v", name, compiled[0].Position.Anchor, want)
		}
	}
}
