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

package text

import (
	"regexp"

	"gitlab.com/tozd/go/errors"
)

const (
	// DefaultCleanupPattern matches a comment marker followed by two or more whitespace characters
	DefaultCleanupPattern = `//\s+\s+`

	// DefaultCleanupReplacement is what each cleanup match collapses to
	DefaultCleanupReplacement = "// "
)

// PipelineOptions describes the stages of a Pipeline
type PipelineOptions struct {
	Emoji              []ReplacementRule
	Tags               []ReplacementRule
	Separator          ReplacementRule
	CleanupPattern     string
	CleanupReplacement string
}

// Pipeline runs content through the emoji table, the tag table, the
// separator replacement and the cleanup regex, in that order. Every stage
// works on the output of the one before it.
type Pipeline struct {
	emoji              *SimpleTextReplacer
	tags               *SimpleTextReplacer
	separator          *SimpleTextReplacer
	cleanup            *regexp.Regexp
	cleanupReplacement string
	opts               PipelineOptions
}

var _ TextReplacer = (*Pipeline)(nil)

// NewPipeline compiles the options into a Pipeline
func NewPipeline(opts PipelineOptions) (*Pipeline, error) {
	if err := ValidateRules(opts.Emoji); err != nil {
		return nil, errors.Errorf("emoji table: %w", err)
	}
	if err := ValidateRules(opts.Tags); err != nil {
		return nil, errors.Errorf("tag table: %w", err)
	}

	p := &Pipeline{
		emoji:              NewSimpleTextReplacer(opts.Emoji),
		tags:               NewSimpleTextReplacer(opts.Tags),
		separator:          NewSimpleTextReplacer([]ReplacementRule{opts.Separator}),
		cleanupReplacement: opts.CleanupReplacement,
		opts:               opts,
	}

	if opts.CleanupPattern != "" {
		re, err := regexp.Compile(opts.CleanupPattern)
		if err != nil {
			return nil, errors.Errorf("compiling cleanup pattern %q: %w", opts.CleanupPattern, err)
		}
		p.cleanup = re
	}

	return p, nil
}

// Options returns the options the pipeline was built from
func (p *Pipeline) Options() PipelineOptions {
	return p.opts
}

// ReplaceText implements TextReplacer.ReplaceText
func (p *Pipeline) ReplaceText(content string) *ReplacementResult {
	result := &ReplacementResult{
		OriginalContent: content,
	}

	current := content
	for _, stage := range []*SimpleTextReplacer{p.emoji, p.tags, p.separator} {
		var n int
		current, n = stage.apply(current)
		result.ReplacementCount += n
	}

	if p.cleanup != nil {
		matches := p.cleanup.FindAllStringIndex(current, -1)
		if len(matches) > 0 {
			result.ReplacementCount += len(matches)
			current = p.cleanup.ReplaceAllLiteralString(current, p.cleanupReplacement)
		}
	}

	result.ModifiedContent = current
	result.WasModified = current != content
	return result
}
