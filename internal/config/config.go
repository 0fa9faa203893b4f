// Package config carries the built-in difficulty presets, symbol display
// tables, and server settings, with optional YAML overrides.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"svw.info/worksheets/internal/domain"
)

// Symbols are the display glyphs for symbol indices, paired with
// SymbolColors by position.
var Symbols = []string{"★", "♦", "♠", "♣", "♥", "▲", "●", "■", "◆", "✦", "⊕", "⊗"}

// SymbolColors are CSS colors matching Symbols by index.
var SymbolColors = []string{
	"#ffd700", // gold
	"#dc3232", // red
	"#1e64c8", // blue
	"#32b432", // green
	"#dc50b4", // pink
	"#ff8c00", // orange
	"#783cc8", // purple
	"#00b4b4", // teal
	"#b4783c", // brown
	"#64c8ff", // sky blue
	"#c8c832", // yellow-green
	"#a0a0a0", // silver
}

// SymbolPreset names a ready-made symbol-grid parameter set.
type SymbolPreset struct {
	Name        string              `yaml:"name"`
	Description string              `yaml:"description"`
	Params      domain.SymbolParams `yaml:"params"`
}

// KenKenPreset names a ready-made KenKen parameter set.
type KenKenPreset struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Spec        domain.KenKenSpec `yaml:"spec"`
}

// Config is the full server configuration. PresetOrder fields control
// button ordering on the index pages.
type Config struct {
	Addr          string         `yaml:"addr"`
	LogLevel      string         `yaml:"log_level"`
	SymbolPresets []SymbolPreset `yaml:"symbol_presets"`
	KenKenPresets []KenKenPreset `yaml:"kenken_presets"`
}

// Default returns the built-in configuration, matching the shipped
// worksheet difficulty ladder.
func Default() *Config {
	return &Config{
		Addr:     ":8080",
		LogLevel: "info",
		SymbolPresets: []SymbolPreset{
			{
				Name:        "Easy",
				Description: "3×3 grid, 3 symbols, all hints shown",
				Params:      domain.SymbolParams{GridSize: 3, NumSymbols: 3, ValueMin: 1, ValueMax: 5, HintFraction: 1.0, DistinctValues: true},
			},
			{
				Name:        "Medium",
				Description: "4×4 grid, 4 symbols, 75% of hints",
				Params:      domain.SymbolParams{GridSize: 4, NumSymbols: 4, ValueMin: 1, ValueMax: 10, HintFraction: 0.75, DistinctValues: true},
			},
			{
				Name:        "Hard",
				Description: "5×5 grid, 6 symbols, 60% of hints, values may repeat",
				Params:      domain.SymbolParams{GridSize: 5, NumSymbols: 6, ValueMin: 1, ValueMax: 15, HintFraction: 0.6},
			},
			{
				Name:        "Expert",
				Description: "5×5 grid, 7 symbols, minimal hints, values may repeat",
				Params:      domain.SymbolParams{GridSize: 5, NumSymbols: 7, ValueMin: 1, ValueMax: 20, HintFraction: 0.0},
			},
		},
		KenKenPresets: []KenKenPreset{
			{
				Name:        "Easy",
				Description: "3×3 grid, addition only, small cages",
				Spec:        domain.KenKenSpec{Size: 3, MaxCageSize: 2, AllowedOperations: []domain.Operation{domain.OpAdd}},
			},
			{
				Name:        "Medium",
				Description: "4×4 grid, addition & subtraction",
				Spec:        domain.KenKenSpec{Size: 4, MaxCageSize: 3, AllowedOperations: []domain.Operation{domain.OpAdd, domain.OpSubtract}},
			},
			{
				Name:        "Hard",
				Description: "5×5 grid, add/subtract/multiply, larger cages",
				Spec:        domain.KenKenSpec{Size: 5, MaxCageSize: 4, AllowedOperations: []domain.Operation{domain.OpAdd, domain.OpSubtract, domain.OpMultiply}},
			},
			{
				Name:        "Expert",
				Description: "6×6 grid, all four operations",
				Spec:        domain.KenKenSpec{Size: 6, MaxCageSize: 4, AllowedOperations: []domain.Operation{domain.OpAdd, domain.OpSubtract, domain.OpMultiply, domain.OpDivide}},
			},
		},
	}
}

// Load returns the default configuration overlaid with the YAML file at
// path. An empty path returns the defaults untouched. Unknown fields in
// the file are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var file Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if file.Addr != "" {
		cfg.Addr = file.Addr
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	if len(file.SymbolPresets) > 0 {
		cfg.SymbolPresets = file.SymbolPresets
	}
	if len(file.KenKenPresets) > 0 {
		cfg.KenKenPresets = file.KenKenPresets
	}
	return cfg, nil
}

// SymbolPreset looks up a symbol-grid preset by name.
func (c *Config) SymbolPreset(name string) (SymbolPreset, bool) {
	for _, p := range c.SymbolPresets {
		if p.Name == name {
			return p, true
		}
	}
	return SymbolPreset{}, false
}

// KenKenPreset looks up a KenKen preset by name.
func (c *Config) KenKenPreset(name string) (KenKenPreset, bool) {
	for _, p := range c.KenKenPresets {
		if p.Name == name {
			return p, true
		}
	}
	return KenKenPreset{}, false
}
