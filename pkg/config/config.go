// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/textscrub/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse decodes the config from bytes on top of base
	Parse(ctx context.Context, data []byte, base *Config) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔄 Replacement is a literal string replacement
type Replacement struct {
	From string `json:"from" yaml:"from"` // Text to look for
	To   string `json:"to" yaml:"to"`     // Text to put in its place
}

// 🧹 Cleanup is the regular expression run after every literal replacement
type Cleanup struct {
	Pattern     string `json:"pattern" yaml:"pattern"`         // RE2 pattern
	Replacement string `json:"replacement" yaml:"replacement"` // Literal replacement for each match
}

// 📚 Config represents the complete configuration
type Config struct {
	Root      string        `json:"root,omitempty" yaml:"root,omitempty"`       // Directory to walk
	Extension string        `json:"extension" yaml:"extension"`                 // Only files ending in this are rewritten
	Exclude   []string      `json:"exclude,omitempty" yaml:"exclude,omitempty"` // Doublestar globs, relative to Root
	Emoji     []Replacement `json:"emoji" yaml:"emoji"`                         // Applied first, in order
	Tags      []Replacement `json:"tags" yaml:"tags"`                           // Applied second, in order
	Separator Replacement   `json:"separator" yaml:"separator"`                 // Applied after both tables
	Cleanup   Cleanup       `json:"cleanup" yaml:"cleanup"`                     // Applied last
}

// 🎯 Load loads the configuration from a file, layered over Default.
// An empty path returns the defaults.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)

	if path == "" {
		logger.Debug().Msg("no config file given, using defaults")
		cfg := Default()
		return cfg, nil
	}

	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data, Default())
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Extension == "" {
		return errors.Errorf("extension is required")
	}

	for _, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("exclude pattern %q is invalid", pattern)
		}
	}

	// Building the pipeline checks the tables and compiles the cleanup pattern
	if _, err := cfg.Pipeline(); err != nil {
		return err
	}

	// Clean up paths
	if cfg.Root != "" {
		cfg.Root = filepath.Clean(cfg.Root)
	}

	return nil
}

// 🏭 Pipeline builds the content pipeline described by the config
func (cfg *Config) Pipeline() (*text.Pipeline, error) {
	return text.NewPipeline(text.PipelineOptions{
		Emoji:              toRules(cfg.Emoji),
		Tags:               toRules(cfg.Tags),
		Separator:          text.ReplacementRule{FromText: cfg.Separator.From, ToText: cfg.Separator.To},
		CleanupPattern:     cfg.Cleanup.Pattern,
		CleanupReplacement: cfg.Cleanup.Replacement,
	})
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	root := cfg.Root
	if root == "" {
		root = "<unset>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s (*%s) emoji=%d tags=%d", root, cfg.Extension, len(cfg.Emoji), len(cfg.Tags))
	if len(cfg.Exclude) > 0 {
		fmt.Fprintf(&b, " exclude=%s", strings.Join(cfg.Exclude, ","))
	}
	return b.String()
}

func toRules(reps []Replacement) []text.ReplacementRule {
	rules := make([]text.ReplacementRule, 0, len(reps))
	for _, r := range reps {
		rules = append(rules, text.ReplacementRule{FromText: r.From, ToText: r.To})
	}
	return rules
}
