package rules

import (
	"testing"

	"github.com/1broseidon/winrules/internal/layout"
)

var testMonitor = layout.Monitor{Name: "X", X: 0, Y: 0, Width: 1920, Height: 1080}

func TestResolvePosition_NamedAnchors(t *testing.T) {
	const winW, winH = 800, 600
	cases := []struct {
		anchor Anchor
		x, y   int
	}{
		{AnchorCenter, 560, 240},
		{AnchorTopLeft, 0, 0},
		{AnchorTopRight, 1120, 0},
		{AnchorBottomLeft, 0, 480},
		{AnchorBottomRight, 1120, 480},
		{AnchorLeft, 0, 240},
		{AnchorRight, 1120, 240},
		{AnchorTop, 560, 0},
		{AnchorBottom, 560, 480},
	}
	for _, tc := range cases {
		pos := &PositionTarget{Kind: PositionNamed, Anchor: tc.anchor}
		x, y := ResolvePosition(pos, testMonitor, winW, winH)
		if x != tc.x || y != tc.y {
			t.Fatalf("anchor %v: got (%d, %d), want (%d, %d)", tc.anchor, x, y, tc.x, tc.y)
		}
	}
}

func TestResolvePosition_AnchorsUseMonitorOrigin(t *testing.T) {
	mon := layout.Monitor{Name: "right", X: 1920, Y: 100, Width: 1920, Height: 1080}
	pos := &PositionTarget{Kind: PositionNamed, Anchor: AnchorCenter}
	x, y := ResolvePosition(pos, mon, 800, 600)
	if x != 1920+560 || y != 100+240 {
		t.Fatalf("got (%d, %d), want (2480, 340)", x, y)
	}
}

func TestResolvePosition_AbsoluteIsVerbatim(t *testing.T) {
	mon := layout.Monitor{Name: "right", X: 1920, Y: 0, Width: 1920, Height: 1080}
	pos := &PositionTarget{Kind: PositionAbsolute, X: 100, Y: 200}
	x, y := ResolvePosition(pos, mon, 800, 600)
	if x != 100 || y != 200 {
		t.Fatalf("absolute position must not be monitor-relative, got (%d, %d)", x, y)
	}
}

func TestResolvePosition_Flexible(t *testing.T) {
	mon := layout.Monitor{Name: "right", X: 1920, Y: 100, Width: 1000, Height: 500}
	pos := &PositionTarget{
		Kind: PositionFlexible,
		DimX: Dimension{Percent: true, Frac: 0.25},
		DimY: Dimension{Pixels: 50},
	}
	x, y := ResolvePosition(pos, mon, 0, 0)
	if x != 1920+250 || y != 100+50 {
		t.Fatalf("got (%d, %d), want (2170, 150)", x, y)
	}
}

func TestResolveSize_Flexible(t *testing.T) {
	sz := &SizeTarget{
		Flexible: true,
		DimW:     Dimension{Percent: true, Frac: 0.50},
		DimH:     Dimension{Percent: true, Frac: 1.0},
	}
	w, h := ResolveSize(sz, testMonitor)
	if w != 960 || h != 1080 {
		t.Fatalf("got %dx%d, want 960x1080", w, h)
	}
}

func TestResolveSize_ClampsToOnePixel(t *testing.T) {
	sz := &SizeTarget{
		Flexible: true,
		DimW:     Dimension{Percent: true, Frac: 0.0},
		DimH:     Dimension{Pixels: 0},
	}
	w, h := ResolveSize(sz, testMonitor)
	if w != 1 || h != 1 {
		t.Fatalf("got %dx%d, want 1x1", w, h)
	}
}

func TestResolveSize_PercentTruncates(t *testing.T) {
	mon := layout.Monitor{Width: 999, Height: 999}
	sz := &SizeTarget{
		Flexible: true,
		DimW:     Dimension{Percent: true, Frac: 0.50},
		DimH:     Dimension{Percent: true, Frac: 0.50},
	}
	w, h := ResolveSize(sz, mon)
	if w != 499 || h != 499 {
		t.Fatalf("got %dx%d, want truncation to 499x499", w, h)
	}
}

func TestResolveMonitor_Precedence(t *testing.T) {
	monitors := []layout.Monitor{
		{Name: "DP-1", X: 0, Y: 0, Width: 1920, Height: 1080},
		{Name: "HDMI-1", X: 1920, Y: 0, Width: 1920, Height: 1080},
	}
	// Window parked on the first monitor.
	winRect := &layout.Rect{X: 100, Y: 100, Width: 800, Height: 600}

	idx := uint32(1)
	got := ResolveMonitor(monitors, &MonitorTarget{Index: &idx}, winRect)
	if got.Name != "HDMI-1" {
		t.Fatalf("valid index must win over containment, got %s", got.Name)
	}

	badIdx := uint32(5)
	got = ResolveMonitor(monitors, &MonitorTarget{Index: &badIdx}, winRect)
	if got.Name != "DP-1" {
		t.Fatalf("out-of-range index must fall through to containment, got %s", got.Name)
	}

	name := "HDMI-1"
	got = ResolveMonitor(monitors, &MonitorTarget{Name: &name}, winRect)
	if got.Name != "HDMI-1" {
		t.Fatalf("name match must win, got %s", got.Name)
	}

	missing := "DVI-0"
	got = ResolveMonitor(monitors, &MonitorTarget{Name: &missing}, winRect)
	if got.Name != "DP-1" {
		t.Fatalf("unknown name must fall through to containment, not error, got %s", got.Name)
	}
}

func TestResolveMonitor_Fallbacks(t *testing.T) {
	monitors := []layout.Monitor{
		{Name: "DP-1", X: 0, Y: 0, Width: 1920, Height: 1080},
		{Name: "HDMI-1", X: 1920, Y: 0, Width: 1920, Height: 1080},
	}

	// Center on second monitor, no explicit target.
	winRect := &layout.Rect{X: 2000, Y: 100, Width: 800, Height: 600}
	got := ResolveMonitor(monitors, nil, winRect)
	if got.Name != "HDMI-1" {
		t.Fatalf("containment should pick HDMI-1, got %s", got.Name)
	}

	// Unknown geometry falls back to the first monitor.
	got = ResolveMonitor(monitors, nil, nil)
	if got.Name != "DP-1" {
		t.Fatalf("expected first monitor, got %s", got.Name)
	}

	// No monitors at all synthesizes a 1920x1080 default at the origin.
	got = ResolveMonitor(nil, nil, nil)
	if got.Width != 1920 || got.Height != 1080 || got.X != 0 || got.Y != 0 {
		t.Fatalf("expected synthetic 1920x1080 monitor, got %+v", got)
	}
}
