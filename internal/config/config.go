// Package config loads the engine's YAML configuration file (SPEC_FULL.md
// §10): lexicon/HMM paths, the default language variant, and the
// fallback-syllabifier toggle. The teacher carries no config layer of
// its own, so this package adopts the pack-wide `gopkg.in/yaml.v3`
// convention rather than inventing one.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/az-ai-labs/g2p-en/lexicon"
)

// Config is the on-disk shape of a g2p engine config file.
type Config struct {
	// LexiconPath is the JSON surface-form -> phoneme dictionary. Required.
	LexiconPath string `yaml:"lexicon_path"`
	// HMMPath is the JSON Viterbi tagger model. Optional: when empty
	// every token is tagged "XX" (spec §6).
	HMMPath string `yaml:"hmm_path,omitempty"`
	// Language selects the lexicon's stress/stemming variant. Defaults
	// to "en-US" when empty.
	Language string `yaml:"language,omitempty"`
	// DisableFallback is parsed from the file but is not passed to the
	// engine: the g2p command and g2p.Config have no fallback switch, so
	// the DP syllabifier runs for unknown words regardless of its value.
	DisableFallback bool `yaml:"disable_fallback,omitempty"`
}

// Load reads and parses a YAML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: read file")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "config: parse yaml")
	}
	if cfg.LexiconPath == "" {
		return nil, errors.New("config: lexicon_path is required")
	}
	if cfg.Language == "" {
		cfg.Language = "en-US"
	}
	return &cfg, nil
}

// LanguageVariant resolves the configured Language string ("en-US" or
// "en-GB") to a lexicon.Language, falling back to lexicon.EnUS for an
// empty or unrecognized value.
func (c *Config) LanguageVariant() lexicon.Language {
	switch c.Language {
	case "en-GB", "en-gb":
		return lexicon.EnGB
	default:
		return lexicon.EnUS
	}
}
