package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Rule is one declarative window rule as written in the config file. Matcher
// fields left unset match everything; validation requires at least one to be
// set. Action fields left unset are not applied.
type Rule struct {
	// Matchers
	Class   *string `yaml:"class"`
	Title   *string `yaml:"title"`
	Role    *string `yaml:"role"`
	Process *string `yaml:"process"`
	Type    *string `yaml:"type"`

	// Actions
	Workspace  *uint32        `yaml:"workspace"`
	Monitor    *MonitorValue  `yaml:"monitor"`
	Position   *PositionValue `yaml:"position"`
	Size       *SizeValue     `yaml:"size"`
	Maximize   *bool          `yaml:"maximize"`
	Fullscreen *bool          `yaml:"fullscreen"`
	Pin        *bool          `yaml:"pin"`
	Minimize   *bool          `yaml:"minimize"`
	Shade      *bool          `yaml:"shade"`
	Above      *bool          `yaml:"above"`
	Below      *bool          `yaml:"below"`
	Decorate   *bool          `yaml:"decorate"`
	Focus      *bool          `yaml:"focus"`
	Opacity    *float64       `yaml:"opacity"`
}

// Config is the root of the rule file.
type Config struct {
	Rules []Rule `yaml:"rules"`
}

// MonitorValue selects a monitor either by enumeration index or by output
// name:
//
//	monitor: 1
//	monitor: "HDMI-1"
type MonitorValue struct {
	Index *uint32
	Name  *string
}

func (m *MonitorValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("monitor must be an index or an output name")
	}
	if node.Tag == "!!int" {
		var idx uint32
		if err := node.Decode(&idx); err != nil {
			return fmt.Errorf("monitor index: %w", err)
		}
		m.Index = &idx
		return nil
	}
	var name string
	if err := node.Decode(&name); err != nil {
		return fmt.Errorf("monitor name: %w", err)
	}
	m.Name = &name
	return nil
}

// PositionValue accepts three shapes:
//
//	position: center            # named anchor
//	position: [100, 200]        # absolute pixels
//	position: ["25%", "50%"]    # percentage of monitor, or numeric strings
type PositionValue struct {
	Named    string
	Absolute *[2]int
	Flexible *[2]string
}

func (p *PositionValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&p.Named)
	case yaml.SequenceNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("position needs exactly two elements, got %d", len(node.Content))
		}
		if node.Content[0].Tag == "!!int" && node.Content[1].Tag == "!!int" {
			var abs [2]int
			if err := node.Decode(&abs); err != nil {
				return fmt.Errorf("position: %w", err)
			}
			p.Absolute = &abs
			return nil
		}
		var flex [2]string
		if err := node.Decode(&flex); err != nil {
			return fmt.Errorf("position: %w", err)
		}
		p.Flexible = &flex
		return nil
	default:
		return fmt.Errorf("position must be an anchor name or a two-element list")
	}
}

// SizeValue accepts two shapes:
//
//	size: [800, 600]            # absolute pixels
//	size: ["50%", "100%"]       # percentage of monitor, or numeric strings
type SizeValue struct {
	Absolute *[2]uint32
	Flexible *[2]string
}

func (s *SizeValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("size must be a two-element list")
	}
	if len(node.Content) != 2 {
		return fmt.Errorf("size needs exactly two elements, got %d", len(node.Content))
	}
	if node.Content[0].Tag == "!!int" && node.Content[1].Tag == "!!int" {
		var abs [2]uint32
		if err := node.Decode(&abs); err != nil {
			return fmt.Errorf("size: %w", err)
		}
		s.Absolute = &abs
		return nil
	}
	var flex [2]string
	if err := node.Decode(&flex); err != nil {
		return fmt.Errorf("size: %w", err)
	}
	s.Flexible = &flex
	return nil
}

// HasMatcher reports whether at least one matcher field is set.
func (r *Rule) HasMatcher() bool {
	return r.Class != nil || r.Title != nil || r.Role != nil ||
		r.Process != nil || r.Type != nil
}
