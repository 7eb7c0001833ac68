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
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent = 4  // spaces to indent file entries
	nameWidth  = 35 // Base width for filename
)

// 🎯 FileOperation represents the outcome for one file
type FileOperation struct {
	Path         string // File path as shown to the user
	IsModified   bool   // Whether the file was rewritten
	Replacements int    // Number of replacements made
	Err          error  // Set when the file could not be processed
}

// 🎯 Logger prints user-facing lines to the console and mirrors them to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex

	modified int
	failed   int
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 📝 formatFileOperation formats a file operation for display
func (l *Logger) formatFileOperation(op FileOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	var status string
	switch {
	case op.Err != nil:
		symbol = '✗'
		symbolColor = color.FgRed
		status = color.New(color.FgRed).Sprintf("error: %v", op.Err)
	case op.IsModified:
		symbol = '⟳'
		symbolColor = color.FgBlue
		status = fmt.Sprintf("modified (%d replacements)", op.Replacements)
	default:
		symbol = '•'
		symbolColor = color.FgCyan
		status = "unchanged"
	}

	return fmt.Sprintf("%s%s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Path),
		status)
}

// 📝 LogFileOperation prints modified and failed files; unchanged files only reach the debug log
func (l *Logger) LogFileOperation(op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case op.Err != nil:
		l.failed++
		fmt.Fprintln(l.console, l.formatFileOperation(op))
		l.zlog.Error().
			Err(op.Err).
			Str("file", op.Path).
			Msg("processing file")
	case op.IsModified:
		l.modified++
		fmt.Fprintln(l.console, l.formatFileOperation(op))
		l.zlog.Info().
			Str("file", op.Path).
			Int("replacements", op.Replacements).
			Msg("file rewritten")
	default:
		l.zlog.Debug().
			Str("file", op.Path).
			Msg("file unchanged")
	}
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("textscrub")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Summary prints the final count of modified files, and of failures when there were any
func (l *Logger) Summary() {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console)
	msg := fmt.Sprintf("%d file(s) modified", l.modified)
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	if l.failed > 0 {
		warn := fmt.Sprintf("%d file(s) could not be processed", l.failed)
		fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(warn))
	}
	l.zlog.Info().
		Int("modified", l.modified).
		Int("failed", l.failed).
		Msg("batch complete")
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}
