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

package operation

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/walteh/textscrub/pkg/config"
	"github.com/walteh/textscrub/pkg/log"
	"github.com/walteh/textscrub/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a unit of work executed by the runner
type Operation interface {
	Execute(ctx context.Context) error
}

// 🔧 FileOp names the step a file failed in
type FileOp string

const (
	OpWalk   FileOp = "walk"
	OpRead   FileOp = "read"
	OpDecode FileOp = "decode"
	OpWrite  FileOp = "write"
)

// ErrInvalidUTF8 is the cause of every decode failure
var ErrInvalidUTF8 = errors.Base("content is not valid UTF-8")

// 💥 FileProcessingError is the only per-file error kind. It never stops a batch.
type FileProcessingError struct {
	Path string
	Op   FileOp
	Err  error
}

func (e *FileProcessingError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileProcessingError) Unwrap() error {
	return e.Err
}

// 🔧 Options contains configuration for a rewrite
type Options struct {
	// Config holds the root, the filters and the replacement tables
	Config *config.Config
	// Files reads and writes file content; defaults to a status.Manager on the root
	Files status.FileManager
	// StatusMgr tracks per-file outcomes; defaults to the same status.Manager
	StatusMgr status.StatusReporter
	// Logger receives structured logs
	Logger *zerolog.Logger
	// Console receives the user-facing lines
	Console *log.Logger
}

// 📊 Report summarizes one batch
type Report struct {
	Scanned  int                    // Files that matched the filter
	Modified []string               // Paths rewritten, relative to the root
	Failed   []*FileProcessingError // Files that could not be processed
	Files    []status.FileInfo      // Outcome of every visited file, sorted by path
}

// ModifiedCount returns the number of files rewritten
func (r *Report) ModifiedCount() int {
	return len(r.Modified)
}

func (opts *Options) setDefaults() error {
	if opts.Config == nil {
		return errors.Errorf("config is required")
	}
	if opts.Logger == nil {
		nop := zerolog.Nop()
		opts.Logger = &nop
	}
	if opts.Console == nil {
		opts.Console = log.New(io.Discard, *opts.Logger)
	}
	if opts.Files == nil || opts.StatusMgr == nil {
		mgr := status.New(opts.Config.Root, opts.Logger)
		if opts.Files == nil {
			opts.Files = mgr
		}
		if opts.StatusMgr == nil {
			opts.StatusMgr = mgr
		}
	}
	return nil
}
