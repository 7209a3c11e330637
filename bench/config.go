package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LengthRange 数组长度序列：从 Min 开始按 Factor 倍增到 Max
type LengthRange struct {
	Min    int `yaml:"min"`
	Max    int `yaml:"max"`
	Factor int `yaml:"factor"`
}

// Config holds benchmark parameters.
type Config struct {
	Lengths LengthRange `yaml:"lengths"`
	// Iterations > 0 is a fixed repeat count; < 0 keeps Repeat*Length ≈ -Iterations.
	Iterations int    `yaml:"iterations"`
	Seed       int64  `yaml:"seed"`
	ReportDir  string `yaml:"report_dir"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Lengths:    LengthRange{Min: 1_000, Max: 1_000_000, Factor: 10},
		Iterations: -4_000_000,
		Seed:       42,
		ReportDir:  "report",
	}
}

// OrDefault returns DefaultConfig if c is nil, otherwise normalizes c.
func (c *Config) OrDefault() *Config {
	if c == nil {
		return DefaultConfig()
	}
	d := DefaultConfig()
	if c.Lengths.Min <= 0 {
		c.Lengths.Min = d.Lengths.Min
	}
	if c.Lengths.Max < c.Lengths.Min {
		c.Lengths.Max = c.Lengths.Min
	}
	if c.Lengths.Factor <= 1 {
		c.Lengths.Factor = d.Lengths.Factor
	}
	if c.Iterations == 0 {
		c.Iterations = d.Iterations
	}
	if c.ReportDir == "" {
		c.ReportDir = d.ReportDir
	}
	return c
}

// LoadConfig reads a yaml file over the defaults. An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg.OrDefault(), nil
}

// Repeat 计算长度为 n 时的重复次数，规则同原始计时用例的 n_iter
func (c *Config) Repeat(n int) (int, error) {
	if c.Iterations >= 0 {
		return c.Iterations, nil
	}
	if n <= 0 {
		return 0, fmt.Errorf("length %d: negative iterations need a positive length", n)
	}
	r := -c.Iterations / n
	if r < 2 {
		return 0, fmt.Errorf("length %d: iterations %d give %d repeats, need at least 2", n, c.Iterations, r)
	}
	return r, nil
}
