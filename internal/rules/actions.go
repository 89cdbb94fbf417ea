package rules

import "github.com/1broseidon/winrules/internal/layout"

// fallbackMonitor stands in when discovery found nothing at all.
var fallbackMonitor = layout.Monitor{Width: 1920, Height: 1080}

// ResolveMonitor picks the monitor a rule's geometry is computed against.
// Precedence: explicit index if it exists, explicit name if it matches a
// discovered output, the monitor containing the window's center, the first
// discovered monitor, then a synthetic 1920x1080 monitor at the origin. The
// first method that yields a concrete monitor wins; a miss falls through,
// never errors.
func ResolveMonitor(monitors []layout.Monitor, target *MonitorTarget, winRect *layout.Rect) layout.Monitor {
	if target != nil {
		if target.Index != nil {
			if idx := int(*target.Index); idx < len(monitors) {
				return monitors[idx]
			}
		}
		if target.Name != nil {
			for _, mon := range monitors {
				if mon.Name == *target.Name {
					return mon
				}
			}
		}
	}

	if winRect != nil {
		cx, cy := winRect.Center()
		for _, mon := range monitors {
			if mon.Bounds().Contains(cx, cy) {
				return mon
			}
		}
	}

	if len(monitors) > 0 {
		return monitors[0]
	}
	return fallbackMonitor
}

// ResolveSize converts a size target into pixels against the monitor.
// Flexible dimensions truncate toward zero and clamp to a 1px minimum.
func ResolveSize(sz *SizeTarget, mon layout.Monitor) (uint32, uint32) {
	if !sz.Flexible {
		return sz.W, sz.H
	}
	w := max(ResolveDimension(sz.DimW, mon.Width), 1)
	h := max(ResolveDimension(sz.DimH, mon.Height), 1)
	return uint32(w), uint32(h)
}

// ResolvePosition converts a position target into root coordinates. Absolute
// positions are used verbatim; anchors and flexible dimensions are relative
// to the monitor. winW/winH is the window extent used for anchor math, zero
// when unknown.
func ResolvePosition(pos *PositionTarget, mon layout.Monitor, winW, winH int) (int, int) {
	switch pos.Kind {
	case PositionAbsolute:
		return pos.X, pos.Y
	case PositionNamed:
		return anchorPosition(pos.Anchor, mon, winW, winH)
	default:
		x := ResolveDimension(pos.DimX, mon.Width) + mon.X
		y := ResolveDimension(pos.DimY, mon.Height) + mon.Y
		return x, y
	}
}

// ResolveDimension resolves a dimension against a total extent. Percentages
// truncate toward zero.
func ResolveDimension(d Dimension, total int) int {
	if d.Percent {
		return int(float64(total) * d.Frac)
	}
	return d.Pixels
}

func anchorPosition(anchor Anchor, mon layout.Monitor, winW, winH int) (int, int) {
	mx, my := mon.X, mon.Y
	mw, mh := mon.Width, mon.Height

	switch anchor {
	case AnchorCenter:
		return mx + (mw-winW)/2, my + (mh-winH)/2
	case AnchorTopLeft:
		return mx, my
	case AnchorTopRight:
		return mx + mw - winW, my
	case AnchorBottomLeft:
		return mx, my + mh - winH
	case AnchorBottomRight:
		return mx + mw - winW, my + mh - winH
	case AnchorLeft:
		return mx, my + (mh-winH)/2
	case AnchorRight:
		return mx + mw - winW, my + (mh-winH)/2
	case AnchorTop:
		return mx + (mw-winW)/2, my
	default: // AnchorBottom
		return mx + (mw-winW)/2, my + mh - winH
	}
}
