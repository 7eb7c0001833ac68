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
	"strings"

	"gitlab.com/tozd/go/errors"
)

// SimpleTextReplacer applies an ordered table of literal replacements
type SimpleTextReplacer struct {
	rules []ReplacementRule
}

// NewSimpleTextReplacer creates a new SimpleTextReplacer for the given table
func NewSimpleTextReplacer(rules []ReplacementRule) *SimpleTextReplacer {
	return &SimpleTextReplacer{rules: rules}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *SimpleTextReplacer) ReplaceText(content string) *ReplacementResult {
	result := &ReplacementResult{
		OriginalContent: content,
	}

	result.ModifiedContent, result.ReplacementCount = r.apply(content)
	result.WasModified = result.ModifiedContent != content
	return result
}

// apply runs every rule against the output of the previous one
func (r *SimpleTextReplacer) apply(content string) (string, int) {
	count := 0
	for _, rule := range r.rules {
		// Skip empty rules
		if rule.FromText == "" {
			continue
		}

		n := strings.Count(content, rule.FromText)
		if n == 0 {
			continue
		}

		count += n
		content = strings.ReplaceAll(content, rule.FromText, rule.ToText)
	}
	return content, count
}

// ValidateRules checks that all rules are valid
func ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from text is required", i)
		}
	}
	return nil
}
