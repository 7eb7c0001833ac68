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

package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "modified_file",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(FileOperation{
					Path:         "lib/main.dart",
					IsModified:   true,
					Replacements: 2,
				})
			},
			wantLogs: []string{
				"⟳ lib/main.dart                       modified (2 replacements)",
			},
		},
		{
			name: "unchanged_file_is_silent",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(FileOperation{Path: "lib/clean.dart"})
			},
			wantLogs: []string{},
		},
		{
			name: "failed_file",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(FileOperation{
					Path: "lib/locked.dart",
					Err:  errors.New("read lib/locked.dart: permission denied"),
				})
			},
			wantLogs: []string{
				"✗ lib/locked.dart                     error: read lib/locked.dart: permission denied",
			},
		},
		{
			name: "summary_counts_modified",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(FileOperation{Path: "a.dart", IsModified: true, Replacements: 1})
				logger.LogFileOperation(FileOperation{Path: "b.dart"})
				logger.LogFileOperation(FileOperation{Path: "c.dart", IsModified: true, Replacements: 4})
				logger.Summary()
			},
			wantLogs: []string{
				"⟳ a.dart                              modified (1 replacements)",
				"⟳ c.dart                              modified (4 replacements)",
				"",
				"✅ 2 file(s) modified",
			},
		},
		{
			name: "summary_reports_failures",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(FileOperation{Path: "a.dart", Err: errors.New("boom")})
				logger.Summary()
			},
			wantLogs: []string{
				"✗ a.dart                              error: boom",
				"",
				"✅ 0 file(s) modified",
				"⚠️  1 file(s) could not be processed",
			},
		},
		{
			name: "header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("rewriting lib")
			},
			wantLogs: []string{
				"textscrub • rewriting lib",
			},
		},
		{
			name: "error_message",
			op: func(t *testing.T, logger *Logger) {
				logger.Error("root lib is not a directory")
			},
			wantLogs: []string{
				"❌ root lib is not a directory",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create buffer for console output
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.New(zerolog.NewTestWriter(t)))

			// Perform operation
			tt.op(t, logger)

			// Check output
			output := strings.TrimSpace(buf.String())
			if len(tt.wantLogs) == 0 {
				assert.Empty(t, output, "no output expected")
				return
			}
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}
