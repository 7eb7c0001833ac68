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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

type hclReplacement struct {
	From string `hcl:"from"`
	To   string `hcl:"to,optional"`
}

type hclCleanup struct {
	Pattern     string `hcl:"pattern"`
	Replacement string `hcl:"replacement,optional"`
}

type hclConfig struct {
	Root      *string          `hcl:"root,optional"`
	Extension *string          `hcl:"extension,optional"`
	Exclude   []string         `hcl:"exclude,optional"`
	Emoji     []hclReplacement `hcl:"emoji,block"`
	Tags      []hclReplacement `hcl:"tag,block"`
	Separator *hclReplacement  `hcl:"separator,block"`
	Cleanup   *hclCleanup      `hcl:"cleanup,block"`
}

// 📝 Parse parses the config from HCL, keeping base values for omitted attributes and blocks
func (p *HCLParser) Parse(ctx context.Context, data []byte, base *Config) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_separator":             cty.StringVal(DefaultSeparator),
			"default_separator_replacement": cty.StringVal(DefaultSeparatorReplacement),
		},
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	cfg := base
	if cfg == nil {
		cfg = &Config{}
	}

	// Overlay onto base
	if hclCfg.Root != nil {
		cfg.Root = *hclCfg.Root
	}
	if hclCfg.Extension != nil {
		cfg.Extension = *hclCfg.Extension
	}
	if hclCfg.Exclude != nil {
		cfg.Exclude = hclCfg.Exclude
	}
	if len(hclCfg.Emoji) > 0 {
		cfg.Emoji = fromHCLReplacements(hclCfg.Emoji)
	}
	if len(hclCfg.Tags) > 0 {
		cfg.Tags = fromHCLReplacements(hclCfg.Tags)
	}
	if hclCfg.Separator != nil {
		cfg.Separator = Replacement{From: hclCfg.Separator.From, To: hclCfg.Separator.To}
	}
	if hclCfg.Cleanup != nil {
		cfg.Cleanup = Cleanup{Pattern: hclCfg.Cleanup.Pattern, Replacement: hclCfg.Cleanup.Replacement}
	}

	return cfg, nil
}

func fromHCLReplacements(in []hclReplacement) []Replacement {
	out := make([]Replacement, 0, len(in))
	for _, r := range in {
		out = append(out, Replacement{From: r.From, To: r.To})
	}
	return out
}
