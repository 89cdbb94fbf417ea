package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/1broseidon/winrules/internal/config"
)

// CompiledRule is an immutable, ready-to-evaluate rule: regex matchers per
// window attribute plus the action payload. A nil matcher matches everything;
// a nil action field is not applied.
type CompiledRule struct {
	// Matchers
	Class      *regexp.Regexp
	Title      *regexp.Regexp
	Role       *regexp.Regexp
	Process    *regexp.Regexp
	WindowType string // exact, case-insensitive; empty = absent

	// Actions
	Workspace  *uint32
	Monitor    *MonitorTarget
	Position   *PositionTarget
	Size       *SizeTarget
	Maximize   *bool
	Fullscreen *bool
	Pin        *bool
	Minimize   *bool
	Shade      *bool
	Above      *bool
	Below      *bool
	Decorate   *bool
	Focus      *bool
	Opacity    *float64
}

// MonitorTarget selects a monitor by enumeration index or output name.
type MonitorTarget struct {
	Index *uint32
	Name  *string
}

// PositionKind discriminates PositionTarget variants.
type PositionKind int

const (
	PositionAbsolute PositionKind = iota
	PositionNamed
	PositionFlexible
)

// PositionTarget is one of: absolute root coordinates, a named anchor on the
// target monitor, or per-axis dimensions resolved against the monitor.
type PositionTarget struct {
	Kind   PositionKind
	X, Y   int       // PositionAbsolute
	Anchor Anchor    // PositionNamed
	DimX   Dimension // PositionFlexible
	DimY   Dimension
}

// SizeTarget is either absolute pixels or per-axis dimensions resolved
// against the target monitor.
type SizeTarget struct {
	Flexible bool
	W, H     uint32    // !Flexible
	DimW     Dimension // Flexible
	DimH     Dimension
}

// Dimension is a pixel count or a fraction of some total extent.
type Dimension struct {
	Percent bool
	Pixels  int
	Frac    float64
}

// Anchor is one of the nine named positions on a monitor.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorTopLeft
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
	AnchorLeft
	AnchorRight
	AnchorTop
	AnchorBottom
)

var anchorNames = map[string]Anchor{
	"center":       AnchorCenter,
	"top-left":     AnchorTopLeft,
	"top-right":    AnchorTopRight,
	"bottom-left":  AnchorBottomLeft,
	"bottom-right": AnchorBottomRight,
	"left":         AnchorLeft,
	"right":        AnchorRight,
	"top":          AnchorTop,
	"bottom":       AnchorBottom,
}

// Compile turns a validated config into the active rule set. Any error
// rejects the whole set; the caller keeps its previous rules.
func Compile(cfg *config.Config) ([]*CompiledRule, error) {
	compiled := make([]*CompiledRule, 0, len(cfg.Rules))
	for i := range cfg.Rules {
		rule, err := compileRule(&cfg.Rules[i])
		if err != nil {
			return nil, fmt.Errorf("rule[%d]: %w", i, err)
		}
		compiled = append(compiled, rule)
	}
	return compiled, nil
}

func compileRule(r *config.Rule) (*CompiledRule, error) {
	out := &CompiledRule{
		Workspace:  r.Workspace,
		Maximize:   r.Maximize,
		Fullscreen: r.Fullscreen,
		Pin:        r.Pin,
		Minimize:   r.Minimize,
		Shade:      r.Shade,
		Above:      r.Above,
		Below:      r.Below,
		Decorate:   r.Decorate,
		Focus:      r.Focus,
		Opacity:    r.Opacity,
	}

	var err error
	if out.Class, err = compilePattern(r.Class); err != nil {
		return nil, err
	}
	if out.Title, err = compilePattern(r.Title); err != nil {
		return nil, err
	}
	if out.Role, err = compilePattern(r.Role); err != nil {
		return nil, err
	}
	if out.Process, err = compilePattern(r.Process); err != nil {
		return nil, err
	}
	if r.Type != nil {
		out.WindowType = *r.Type
	}

	if r.Monitor != nil {
		out.Monitor = &MonitorTarget{Index: r.Monitor.Index, Name: r.Monitor.Name}
	}
	if r.Position != nil {
		if out.Position, err = compilePosition(r.Position); err != nil {
			return nil, err
		}
	}
	if r.Size != nil {
		if out.Size, err = compileSize(r.Size); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func compilePattern(pat *string) (*regexp.Regexp, error) {
	if pat == nil {
		return nil, nil
	}
	re, err := regexp.Compile(*pat)
	if err != nil {
		return nil, fmt.Errorf("bad regex %q: %w", *pat, err)
	}
	return re, nil
}

func compilePosition(val *config.PositionValue) (*PositionTarget, error) {
	switch {
	case val.Named != "":
		anchor, ok := anchorNames[val.Named]
		if !ok {
			return nil, fmt.Errorf("unknown position %q", val.Named)
		}
		return &PositionTarget{Kind: PositionNamed, Anchor: anchor}, nil
	case val.Absolute != nil:
		return &PositionTarget{Kind: PositionAbsolute, X: val.Absolute[0], Y: val.Absolute[1]}, nil
	case val.Flexible != nil:
		x, err := ParseDimension(val.Flexible[0])
		if err != nil {
			return nil, err
		}
		y, err := ParseDimension(val.Flexible[1])
		if err != nil {
			return nil, err
		}
		return &PositionTarget{Kind: PositionFlexible, DimX: x, DimY: y}, nil
	default:
		return nil, fmt.Errorf("empty position")
	}
}

func compileSize(val *config.SizeValue) (*SizeTarget, error) {
	if val.Absolute != nil {
		return &SizeTarget{W: val.Absolute[0], H: val.Absolute[1]}, nil
	}
	if val.Flexible == nil {
		return nil, fmt.Errorf("empty size")
	}
	w, err := ParseDimension(val.Flexible[0])
	if err != nil {
		return nil, err
	}
	h, err := ParseDimension(val.Flexible[1])
	if err != nil {
		return nil, err
	}
	return &SizeTarget{Flexible: true, DimW: w, DimH: h}, nil
}

// ParseDimension parses "50%" into a fraction and "800" into pixels.
func ParseDimension(s string) (Dimension, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		val, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return Dimension{}, fmt.Errorf("invalid percentage %q", s)
		}
		return Dimension{Percent: true, Frac: val / 100.0}, nil
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return Dimension{}, fmt.Errorf("invalid dimension %q", s)
	}
	return Dimension{Pixels: val}, nil
}
