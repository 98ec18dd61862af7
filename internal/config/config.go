// Package config loads the trackfin.yaml configuration, chiefly the
// input-format profiles that adjust normalization for known statement
// exports.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/VeteranWolfy/track-finance/internal/normalize"
)

// Config represents the top-level trackfin.yaml configuration.
type Config struct {
	DefaultLedger string          `yaml:"default_ledger,omitempty"`
	Profiles      []FormatProfile `yaml:"profiles"`
}

// FormatProfile describes one known statement export format. A profile
// applies when every header in MatchHeaders appears in the source
// (case-insensitive).
type FormatProfile struct {
	Name                string   `yaml:"name"`
	MatchHeaders        []string `yaml:"match_headers"`
	ExcludeDescriptions []string `yaml:"exclude_descriptions,omitempty"`
	SpendPositive       bool     `yaml:"spend_positive,omitempty"`
}

// Rule converts the profile into its normalization form.
func (p FormatProfile) Rule() *normalize.Profile {
	return &normalize.Profile{
		Name:                p.Name,
		ExcludeDescriptions: p.ExcludeDescriptions,
		SpendPositive:       p.SpendPositive,
	}
}

// Load reads a trackfin.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the built-in configuration. It ships one profile for
// credit-card exports in the Merchant/Amount style, which list spend as
// positive and include direct-debit balance payments that are transfers,
// not spend.
func Default() *Config {
	return &Config{
		Profiles: []FormatProfile{
			{
				Name:                "credit-card",
				MatchHeaders:        []string{"Merchant", "Amount"},
				ExcludeDescriptions: []string{"DIRECT DEBIT PAYMENT"},
				SpendPositive:       true,
			},
		},
	}
}

// MatchProfile returns the first profile whose match headers all appear in
// headers, or nil.
func (c *Config) MatchProfile(headers []string) *normalize.Profile {
	have := make(map[string]bool, len(headers))
	for _, h := range headers {
		have[strings.ToLower(strings.TrimSpace(h))] = true
	}
	for _, p := range c.Profiles {
		matched := len(p.MatchHeaders) > 0
		for _, m := range p.MatchHeaders {
			if !have[strings.ToLower(m)] {
				matched = false
				break
			}
		}
		if matched {
			return p.Rule()
		}
	}
	return nil
}

// Find returns the named profile, or nil.
func (c *Config) Find(name string) *normalize.Profile {
	for _, p := range c.Profiles {
		if strings.EqualFold(p.Name, name) {
			return p.Rule()
		}
	}
	return nil
}
