package layout

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 100, Y: 100, Width: 800, Height: 600}

	cases := []struct {
		x, y int
		want bool
	}{
		{100, 100, true},
		{899, 699, true},
		{900, 100, false}, // right edge is exclusive
		{100, 700, false}, // bottom edge is exclusive
		{99, 100, false},
		{500, 400, true},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.x, tc.y); got != tc.want {
			t.Fatalf("Contains(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 100, Y: 200, Width: 800, Height: 600}
	x, y := r.Center()
	if x != 500 || y != 500 {
		t.Fatalf("Center() = (%d, %d), want (500, 500)", x, y)
	}
}

func TestMonitorBounds(t *testing.T) {
	m := Monitor{Name: "DP-1", X: 1920, Y: 0, Width: 2560, Height: 1440}
	b := m.Bounds()
	if b != (Rect{X: 1920, Y: 0, Width: 2560, Height: 1440}) {
		t.Fatalf("Bounds() = %+v", b)
	}
}
