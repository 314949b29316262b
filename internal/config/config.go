// Package config loads table setup from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the root of a table configuration file
type Config struct {
	Table *Table `hcl:"table,block"`
	Seats []Seat `hcl:"seat,block"`
}

// Table holds blind levels, stack sizes and pacing
type Table struct {
	SmallBlind    int `hcl:"small_blind,optional"`
	BigBlind      int `hcl:"big_blind,optional"`
	StartingChips int `hcl:"starting_chips,optional"`

	// Pause in milliseconds before a bot decision is applied
	ThinkDelayMS int `hcl:"think_delay_ms,optional"`
	// Seconds a human player gets before auto check or fold
	ActionTimeoutSeconds int `hcl:"action_timeout_seconds,optional"`
}

// Seat seats one player. The block label is the player's name.
type Seat struct {
	Name  string `hcl:"name,label"`
	Bot   bool   `hcl:"bot,optional"`
	Chips int    `hcl:"chips,optional"` // overrides starting_chips when set
}

// Default returns the standard four-handed setup with one human seat
func Default() *Config {
	return &Config{
		Table: &Table{
			SmallBlind:           10,
			BigBlind:             20,
			StartingChips:        2000,
			ThinkDelayMS:         3000,
			ActionTimeoutSeconds: 30,
		},
		Seats: []Seat{
			{Name: "You"},
			{Name: "Hoover", Bot: true},
			{Name: "Truman", Bot: true},
			{Name: "Lincoln", Bot: true},
		},
	}
}

// Load reads and parses an HCL config file
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes HCL source into a Config, filling unset table values with
// defaults.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %w", filename, diags)
	}

	cfg := &Config{}
	if diags := gohcl.DecodeBody(file.Body, nil, cfg); diags.HasErrors() {
		return nil, fmt.Errorf("decoding %s: %w", filename, diags)
	}

	defaults := Default().Table
	if cfg.Table == nil {
		cfg.Table = defaults
	} else {
		if cfg.Table.SmallBlind == 0 {
			cfg.Table.SmallBlind = defaults.SmallBlind
		}
		if cfg.Table.BigBlind == 0 {
			cfg.Table.BigBlind = defaults.BigBlind
		}
		if cfg.Table.StartingChips == 0 {
			cfg.Table.StartingChips = defaults.StartingChips
		}
		if cfg.Table.ThinkDelayMS == 0 {
			cfg.Table.ThinkDelayMS = defaults.ThinkDelayMS
		}
		if cfg.Table.ActionTimeoutSeconds == 0 {
			cfg.Table.ActionTimeoutSeconds = defaults.ActionTimeoutSeconds
		}
	}
	return cfg, nil
}

// Validate checks the configuration for playability
func (c *Config) Validate() error {
	if len(c.Seats) < 2 {
		return fmt.Errorf("need at least 2 seats, have %d", len(c.Seats))
	}
	seen := make(map[string]bool, len(c.Seats))
	for _, s := range c.Seats {
		if s.Name == "" {
			return fmt.Errorf("seat with empty name")
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate seat name %q", s.Name)
		}
		seen[s.Name] = true
		if s.Chips < 0 {
			return fmt.Errorf("seat %q has negative chips", s.Name)
		}
	}
	t := c.Table
	if t.SmallBlind <= 0 || t.BigBlind <= 0 {
		return fmt.Errorf("blinds must be positive, got %d/%d", t.SmallBlind, t.BigBlind)
	}
	if t.BigBlind < t.SmallBlind {
		return fmt.Errorf("big blind %d below small blind %d", t.BigBlind, t.SmallBlind)
	}
	if t.StartingChips < t.BigBlind {
		return fmt.Errorf("starting chips %d below big blind %d", t.StartingChips, t.BigBlind)
	}
	return nil
}
