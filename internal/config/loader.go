package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// NamedPositions is the fixed vocabulary of anchor names accepted by the
// position field.
var NamedPositions = []string{
	"center",
	"top-left",
	"top-right",
	"bottom-left",
	"bottom-right",
	"left",
	"right",
	"top",
	"bottom",
}

// DefaultConfigPath returns ~/.config/winrules/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "winrules", "config.yaml"), nil
}

// Load reads and validates the rule file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a rule document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := decodeStrictYAML(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every rule for a matcher and well-formed position/size
// values. Regex compilation is left to the rules package.
func (c *Config) Validate() error {
	for i := range c.Rules {
		rule := &c.Rules[i]
		if !rule.HasMatcher() {
			return fmt.Errorf("rule[%d]: no matcher (need class, title, role, process, or type)", i)
		}
		if rule.Position != nil {
			if err := validatePosition(rule.Position, i); err != nil {
				return err
			}
		}
		if rule.Size != nil {
			if err := validateSize(rule.Size, i); err != nil {
				return err
			}
		}
	}
	return nil
}

func validatePosition(pos *PositionValue, ruleIdx int) error {
	switch {
	case pos.Named != "":
		for _, name := range NamedPositions {
			if pos.Named == name {
				return nil
			}
		}
		return fmt.Errorf("rule[%d]: invalid position %q (expected one of: %s)",
			ruleIdx, pos.Named, strings.Join(NamedPositions, ", "))
	case pos.Flexible != nil:
		for axis, part := range pos.Flexible {
			if err := validateDimensionString(part, ruleIdx, "position", axis); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateSize(sz *SizeValue, ruleIdx int) error {
	if sz.Flexible == nil {
		return nil
	}
	for axis, part := range sz.Flexible {
		if err := validateDimensionString(part, ruleIdx, "size", axis); err != nil {
			return err
		}
	}
	return nil
}

func validateDimensionString(s string, ruleIdx int, field string, axis int) error {
	axisName := "x/width"
	if axis == 1 {
		axisName = "y/height"
	}
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		if _, err := strconv.ParseFloat(pct, 64); err != nil {
			return fmt.Errorf("rule[%d]: invalid %s %s percentage %q", ruleIdx, field, axisName, s)
		}
		return nil
	}
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return fmt.Errorf("rule[%d]: invalid %s %s value %q", ruleIdx, field, axisName, s)
	}
	return nil
}

func decodeStrictYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return nil
}
