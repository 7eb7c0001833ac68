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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 TestJSONParsing tests JSON config parsing
func TestJSONParsing(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:   "valid_minimal_json",
			config: `{"root": "/src/lib"}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/src/lib", cfg.Root)
				assert.Equal(t, DefaultExtension, cfg.Extension)
				assert.Equal(t, defaultEmoji(), cfg.Emoji)
			},
		},
		{
			name: "valid_full_json",
			config: `{
				"root": "lib",
				"extension": ".ts",
				"exclude": ["node_modules/**"],
				"emoji": [{"from": "🐛", "to": "bug:"}],
				"tags": [],
				"separator": {"from": "***", "to": "---"},
				"cleanup": {"pattern": "//\\s{2,}", "replacement": "// "}
			}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "lib", cfg.Root)
				assert.Equal(t, ".ts", cfg.Extension)
				assert.Equal(t, []string{"node_modules/**"}, cfg.Exclude)
				assert.Equal(t, []Replacement{{From: "🐛", To: "bug:"}}, cfg.Emoji)
				assert.Empty(t, cfg.Tags)
				assert.Equal(t, Replacement{From: "***", To: "---"}, cfg.Separator)
				assert.Equal(t, `//\s{2,}`, cfg.Cleanup.Pattern)
			},
		},
		{
			name:        "unknown_field",
			config:      `{"destination": "/tmp"}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "malformed_json",
			config:      `{"root": `,
			wantErr:     true,
			errContains: "parsing JSON",
		},
	}

	parser := &JSONParser{}
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parser.Parse(ctx, []byte(tt.config), Default())
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			require.NoError(t, cfg.Validate())
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestJSONParsing_ReplacesWholeValues(t *testing.T) {
	parser := &JSONParser{}
	ctx := context.Background()

	t.Run("entry_without_from_is_rejected", func(t *testing.T) {
		cfg, err := parser.Parse(ctx, []byte(`{"emoji": [{"to": "X"}]}`), Default())
		require.NoError(t, err, "parsing should succeed")
		assert.Equal(t, []Replacement{{From: "", To: "X"}}, cfg.Emoji, "entry should not inherit the default key")

		err = cfg.Validate()
		require.Error(t, err, "validation should fail")
		assert.Contains(t, err.Error(), "from text is required")
	})

	t.Run("separator_with_only_from", func(t *testing.T) {
		cfg, err := parser.Parse(ctx, []byte(`{"separator": {"from": "---"}}`), Default())
		require.NoError(t, err)
		assert.Equal(t, Replacement{From: "---", To: ""}, cfg.Separator, "omitted to should be empty, not the default")
	})

	t.Run("empty_table_disables_it", func(t *testing.T) {
		cfg, err := parser.Parse(ctx, []byte(`{"tags": []}`), Default())
		require.NoError(t, err)
		assert.NotNil(t, cfg.Tags)
		assert.Empty(t, cfg.Tags)
		assert.Equal(t, defaultEmoji(), cfg.Emoji, "omitted table should keep the default")
	})

	t.Run("shorter_table_drops_extra_defaults", func(t *testing.T) {
		cfg, err := parser.Parse(ctx, []byte(`{"emoji": [{"from": "🦄"}]}`), Default())
		require.NoError(t, err)
		assert.Equal(t, []Replacement{{From: "🦄", To: ""}}, cfg.Emoji)
	})
}
