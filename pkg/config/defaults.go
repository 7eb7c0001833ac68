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
	"strings"

	"github.com/walteh/textscrub/pkg/text"
)

const (
	// DefaultExtension is the file suffix rewritten when none is configured
	DefaultExtension = ".dart"

	// EnvRoot names the environment variable consulted for the root directory
	EnvRoot = "TEXTSCRUB_ROOT"
)

var (
	// DefaultSeparator is the box-drawing rule line
	DefaultSeparator = strings.Repeat("═", 75)

	// DefaultSeparatorReplacement is the plain ASCII line that replaces it
	DefaultSeparatorReplacement = strings.Repeat("=", 60)
)

// "⚠️" is U+26A0 U+FE0F; the pair is removed as one entry
func defaultEmoji() []Replacement {
	return []Replacement{
		{From: "✅", To: ""},
		{From: "❌", To: ""},
		{From: "⚠️", To: ""},
		{From: "🚀", To: ""},
		{From: "🔥", To: ""},
		{From: "📝", To: ""},
		{From: "💡", To: ""},
		{From: "🎯", To: ""},
		{From: "🔧", To: ""},
		{From: "📦", To: ""},
		{From: "✨", To: ""},
		{From: "🐛", To: ""},
	}
}

func defaultTags() []Replacement {
	return []Replacement{
		{From: "[CRITICAL]", To: ""},
		{From: "[NEW]", To: ""},
		{From: "[核心]", To: ""},
	}
}

// 🏭 Default returns a fresh config holding the built-in tables
func Default() *Config {
	return &Config{
		Extension: DefaultExtension,
		Emoji:     defaultEmoji(),
		Tags:      defaultTags(),
		Separator: Replacement{
			From: DefaultSeparator,
			To:   DefaultSeparatorReplacement,
		},
		Cleanup: Cleanup{
			Pattern:     text.DefaultCleanupPattern,
			Replacement: text.DefaultCleanupReplacement,
		},
	}
}
