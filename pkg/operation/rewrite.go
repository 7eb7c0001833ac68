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
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/textscrub/pkg/config"
	"github.com/walteh/textscrub/pkg/log"
	"github.com/walteh/textscrub/pkg/status"
	"github.com/walteh/textscrub/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// ✂️ Rewriter runs the content pipeline over every matching file under the root
type Rewriter struct {
	cfg       *config.Config
	pipeline  *text.Pipeline
	files     status.FileManager
	statusMgr status.StatusReporter
	logger    *zerolog.Logger
	console   *log.Logger
	walk      func(root string, fn fs.WalkDirFunc) error
}

var _ Operation = (*Rewriter)(nil)

// 🏭 NewRewriter creates a rewriter with the given options
func NewRewriter(opts Options) (*Rewriter, error) {
	if err := opts.setDefaults(); err != nil {
		return nil, err
	}

	pipeline, err := opts.Config.Pipeline()
	if err != nil {
		return nil, errors.Errorf("building pipeline: %w", err)
	}

	return &Rewriter{
		cfg:       opts.Config,
		pipeline:  pipeline,
		files:     opts.Files,
		statusMgr: opts.StatusMgr,
		logger:    opts.Logger,
		console:   opts.Console,
		walk:      filepath.WalkDir,
	}, nil
}

// 🏃 Execute implements Operation
func (r *Rewriter) Execute(ctx context.Context) error {
	_, err := r.Traverse(ctx)
	return err
}

// 🚶 Traverse rewrites every file under the root whose name ends with the
// configured extension. Per-file failures are reported and skipped; only an
// unusable root or a cancelled context returns an error.
func (r *Rewriter) Traverse(ctx context.Context) (*Report, error) {
	if err := r.checkRoot(); err != nil {
		return nil, err
	}

	report := &Report{}

	paths, err := r.discover(ctx, report)
	if err != nil {
		return nil, err
	}
	report.Scanned = len(paths)

	r.logger.Debug().
		Str("root", r.cfg.Root).
		Str("extension", r.cfg.Extension).
		Int("files", len(paths)).
		Msg("discovered files")

	r.statusMgr.StartOperation(ctx, len(paths))
	defer r.statusMgr.FinishOperation(ctx)

	for i, rel := range paths {
		if err := ctx.Err(); err != nil {
			return report, errors.Errorf("rewrite cancelled after %d of %d files: %w", i, len(paths), err)
		}

		display := filepath.Join(r.cfg.Root, rel)
		modified, replacements, err := r.transform(ctx, rel)
		if err != nil {
			var perr *FileProcessingError
			if !errors.As(err, &perr) {
				perr = &FileProcessingError{Path: rel, Op: OpRead, Err: err}
			}
			report.Failed = append(report.Failed, perr)
			r.console.LogFileOperation(log.FileOperation{Path: display, Err: err})
		} else {
			if modified {
				report.Modified = append(report.Modified, rel)
			}
			r.console.LogFileOperation(log.FileOperation{
				Path:         display,
				IsModified:   modified,
				Replacements: replacements,
			})
		}

		r.statusMgr.UpdateProgress(ctx, i+1)
	}

	files, err := r.statusMgr.ListFiles(ctx)
	if err != nil {
		return report, errors.Errorf("listing file outcomes: %w", err)
	}
	report.Files = files

	r.console.Summary()
	return report, nil
}

// 📄 TransformFile reads the file at rel (relative to the root), runs it
// through the pipeline and writes it back if anything changed. It reports
// whether the file was rewritten.
func (r *Rewriter) TransformFile(ctx context.Context, rel string) (bool, error) {
	modified, _, err := r.transform(ctx, rel)
	return modified, err
}

func (r *Rewriter) transform(ctx context.Context, rel string) (bool, int, error) {
	before, err := r.files.ReadFile(ctx, rel)
	if err != nil {
		return false, 0, r.fail(ctx, rel, OpRead, err)
	}

	if !utf8.Valid(before) {
		return false, 0, r.fail(ctx, rel, OpDecode, ErrInvalidUTF8)
	}

	result := r.pipeline.ReplaceText(string(before))
	if !result.WasModified {
		r.statusMgr.Record(ctx, rel, before, before, 0)
		return false, 0, nil
	}

	after := []byte(result.ModifiedContent)
	if err := r.files.WriteFileAtomic(ctx, rel, after); err != nil {
		return false, 0, r.fail(ctx, rel, OpWrite, err)
	}

	r.statusMgr.Record(ctx, rel, before, after, result.ReplacementCount)
	return true, result.ReplacementCount, nil
}

func (r *Rewriter) fail(ctx context.Context, rel string, op FileOp, err error) error {
	perr := &FileProcessingError{Path: rel, Op: op, Err: err}
	r.statusMgr.RecordError(ctx, rel, perr)
	return perr
}

// 🔍 checkRoot fails fast when the root is unusable
func (r *Rewriter) checkRoot() error {
	if r.cfg.Root == "" {
		return errors.Errorf("root directory is required")
	}

	info, err := os.Stat(r.cfg.Root)
	if err != nil {
		return errors.Errorf("checking root directory: %w", err)
	}
	if !info.IsDir() {
		return errors.Errorf("root %s is not a directory", r.cfg.Root)
	}
	return nil
}

// 🗂️ discover lists candidate files relative to the root, in lexical order
func (r *Rewriter) discover(ctx context.Context, report *Report) ([]string, error) {
	var paths []string

	err := r.walk(r.cfg.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == r.cfg.Root {
				return errors.Errorf("walking root directory: %w", err)
			}
			rel := r.rel(path)
			r.logger.Debug().Str("path", rel).Err(err).Msg("walk error")
			perr := &FileProcessingError{Path: rel, Op: OpWalk, Err: err}
			report.Failed = append(report.Failed, perr)
			r.statusMgr.RecordError(ctx, rel, perr)
			r.console.LogFileOperation(log.FileOperation{Path: path, Err: perr})
			return nil
		}

		if path == r.cfg.Root {
			return nil
		}

		rel := r.rel(path)

		if d.IsDir() {
			if r.shouldIgnore(rel) {
				return fs.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(d.Name(), r.cfg.Extension) || r.shouldIgnore(rel) {
			return nil
		}

		// links to directories are listed but never descended into or read
		if d.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				return nil
			}
		}

		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}

func (r *Rewriter) rel(path string) string {
	rel, err := filepath.Rel(r.cfg.Root, path)
	if err != nil {
		return path
	}
	return rel
}

// 🔍 shouldIgnore checks if a path matches one of the exclude globs
func (r *Rewriter) shouldIgnore(rel string) bool {
	slashed := filepath.ToSlash(rel)
	for _, pattern := range r.cfg.Exclude {
		matched, err := doublestar.Match(pattern, slashed)
		if err != nil {
			r.logger.Debug().Str("pattern", pattern).Str("path", rel).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			r.logger.Debug().Str("path", rel).Str("pattern", pattern).Msg("path ignored by pattern")
			return true
		}
	}
	return false
}
