package x11

import "testing"

func TestOpacityCardinal(t *testing.T) {
	cases := []struct {
		in   float64
		want uint32
	}{
		{1.0, 0xFFFFFFFF},
		{0.0, 0},
		{0.95, 0xF3333332}, // round(0.95 * 0xFFFFFFFF)
		{1.5, 0xFFFFFFFF},  // clamped high
		{-0.5, 0},          // clamped low
	}
	for _, tc := range cases {
		if got := opacityCardinal(tc.in); got != tc.want {
			t.Fatalf("opacityCardinal(%v) = %#x, want %#x", tc.in, got, tc.want)
		}
	}
}

func TestMapWindowType(t *testing.T) {
	cases := []struct {
		atom string
		want string
	}{
		{"_NET_WM_WINDOW_TYPE_NORMAL", "normal"},
		{"_NET_WM_WINDOW_TYPE_DIALOG", "dialog"},
		{"_NET_WM_WINDOW_TYPE_DOCK", "dock"},
		{"_NET_WM_WINDOW_TYPE_TOOLBAR", "toolbar"},
		{"_NET_WM_WINDOW_TYPE_MENU", "menu"},
		{"_NET_WM_WINDOW_TYPE_UTILITY", "utility"},
		{"_NET_WM_WINDOW_TYPE_SPLASH", "splash"},
		{"_NET_WM_WINDOW_TYPE_DESKTOP", "desktop"},
		{"_NET_WM_WINDOW_TYPE_NOTIFICATION", "unknown"},
		{"", "unknown"},
	}
	for _, tc := range cases {
		if got := mapWindowType(tc.atom); got != tc.want {
			t.Fatalf("mapWindowType(%q) = %q, want %q", tc.atom, got, tc.want)
		}
	}
}
