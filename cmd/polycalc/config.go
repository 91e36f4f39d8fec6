package main

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the content of a polycalc configuration file, for example:
//
//	operands:
//	  - [3, 5]
//	  - [5, -2, 8]
//	at: 4.5
//	table:
//	  from: -1
//	  to: 1
//	  step: 0.25
type Config struct {
	// Operands are used by the commands invoked without positional polynomials.
	Operands [][]float64 `yaml:"operands"`
	// At is the default evaluation point of eval.
	At *float64 `yaml:"at,omitempty"`
	// Table is the default range of table.
	Table *TableRange `yaml:"table,omitempty"`
}

// TableRange is the range of points sampled by table.
type TableRange struct {
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
	Step float64 `yaml:"step"`
}

// MaxTablePoints is the largest number of points a TableRange may cover.
const MaxTablePoints = 1 << 20

// Validate checks that the range is finite, non-empty and covers at most
// MaxTablePoints points.
func (r TableRange) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{{"from", r.From}, {"to", r.To}, {"step", r.Step}} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("invalid table range: %s must be finite but is %v", v.name, v.value)
		}
	}
	if r.Step <= 0 {
		return fmt.Errorf("invalid table range: step must be positive but is %v", r.Step)
	}
	if r.To < r.From {
		return fmt.Errorf("invalid table range: to=%v is smaller than from=%v", r.To, r.From)
	}
	// The difference of two finite values can still overflow to +Inf.
	if points := (r.To-r.From)/r.Step + 1; !(points <= MaxTablePoints) {
		return fmt.Errorf("invalid table range: %v points exceed the limit of %d", points, MaxTablePoints)
	}
	return nil
}

// LoadConfig reads and decodes the YAML configuration file at path.
func LoadConfig(path string) (*Config, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := new(Config)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Table != nil {
		if err := cfg.Table.Validate(); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	return cfg, nil
}
