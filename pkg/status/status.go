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

package status

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents the outcome for a file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusModified             // Content changed and was written back
	StatusUnchanged            // Content already clean, nothing written
	StatusFailed               // Read, decode or write failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusModified:
		return "modified"
	case StatusUnchanged:
		return "unchanged"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains metadata about a processed file
type FileInfo struct {
	Path         string     // Path relative to the base directory
	Status       FileStatus // Outcome
	Size         int64      // Size in bytes after processing
	Checksum     string     // Content hash after processing
	Replacements int        // Number of replacements made
	Inserted     int        // Runes inserted, from the diff
	Deleted      int        // Runes deleted, from the diff
	Error        error      // Any error associated with this file
}

// 💾 FileManager handles all file system operations
type FileManager interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFileAtomic(ctx context.Context, path string, content []byte) error
}

// 📈 StatusReporter tracks file status and reports progress
type StatusReporter interface {
	// Status tracking
	TrackFile(ctx context.Context, path string, info FileInfo)
	Record(ctx context.Context, path string, before, after []byte, replacements int) FileInfo
	RecordError(ctx context.Context, path string, err error)
	ListFiles(ctx context.Context) ([]FileInfo, error)

	// Progress reporting
	StartOperation(ctx context.Context, total int)
	UpdateProgress(ctx context.Context, processed int)
	FinishOperation(ctx context.Context)
}

var (
	_ FileManager    = (*Manager)(nil)
	_ StatusReporter = (*Manager)(nil)
)

// 🔧 Manager implements both FileManager and StatusReporter
type Manager struct {
	baseDir   string          // Base directory for all operations
	logger    *zerolog.Logger // Logger for status updates
	formatter FileFormatter   // Formatter for status messages

	// Status tracking
	mu    sync.RWMutex
	files map[string]FileInfo

	// Progress tracking
	total     int
	processed int
}

// 🏭 New creates a new status manager
func New(baseDir string, logger *zerolog.Logger) *Manager {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Manager{
		baseDir:   filepath.Clean(baseDir),
		logger:    logger,
		formatter: NewDefaultFileFormatter(),
		files:     make(map[string]FileInfo),
	}
}

// 🔒 getAbsPath returns the full path for a given relative path
func (m *Manager) getAbsPath(path string) string {
	return filepath.Join(m.baseDir, path)
}

// 🔍 calculateChecksum generates a SHA-256 hash of the content
func calculateChecksum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// FileManager interface implementation

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	f, err := os.Open(m.getAbsPath(path))
	if err != nil {
		return nil, errors.Errorf("opening file: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// WriteFileAtomic replaces the file with content via a temp file in the same
// directory and a rename. The original permissions are kept, and a symlink is
// written through to its target rather than replaced. When the directory does
// not allow new files, an existing file is truncated and rewritten in place.
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	absPath := m.getAbsPath(path)
	if resolved, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = resolved
	}

	mode := fs.FileMode(0644)
	exists := false
	if info, err := os.Stat(absPath); err == nil {
		mode = info.Mode().Perm()
		exists = true
	} else if !errors.Is(err, fs.ErrNotExist) {
		return errors.Errorf("stat file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(absPath), "."+filepath.Base(absPath)+".*.tmp")
	if err != nil {
		// a writable file in a read-only directory can still be rewritten in place
		if exists && errors.Is(err, fs.ErrPermission) {
			m.logger.Debug().Str("path", path).Err(err).Msg("temp file not allowed, writing in place")
			return writeInPlace(absPath, content)
		}
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	if err := writeAndClose(tmp, content, mode); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return err
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

func writeInPlace(absPath string, content []byte) error {
	f, err := os.OpenFile(absPath, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return errors.Errorf("opening file for writing: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(content); err != nil {
		return errors.Errorf("writing file: %w", err)
	}
	if err := f.Close(); err != nil {
		return errors.Errorf("closing file: %w", err)
	}
	return nil
}

func writeAndClose(f *os.File, content []byte, mode fs.FileMode) error {
	defer f.Close()

	if _, err := f.Write(content); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := f.Chmod(mode); err != nil {
		return errors.Errorf("setting temp file mode: %w", err)
	}
	if err := f.Close(); err != nil {
		return errors.Errorf("closing temp file: %w", err)
	}
	return nil
}

// StatusReporter interface implementation

func (m *Manager) TrackFile(ctx context.Context, path string, info FileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	info.Path = path
	m.files[path] = info

	msg := m.formatter.FormatFileOperation(path, info.Status)
	if info.Error != nil {
		msg = m.formatter.FormatError(info.Error)
	}
	m.logger.Debug().
		Str("path", path).
		Str("status", info.Status.String()).
		Int("replacements", info.Replacements).
		Int("inserted", info.Inserted).
		Int("deleted", info.Deleted).
		Msg(msg)
}

// Record builds the FileInfo for a processed file and tracks it
func (m *Manager) Record(ctx context.Context, path string, before, after []byte, replacements int) FileInfo {
	info := FileInfo{
		Status:       StatusUnchanged,
		Size:         int64(len(after)),
		Checksum:     calculateChecksum(after),
		Replacements: replacements,
	}
	if string(before) != string(after) {
		info.Status = StatusModified
		info.Inserted, info.Deleted = DiffStats(string(before), string(after))
	}
	m.TrackFile(ctx, path, info)
	return info
}

// RecordError tracks a failed file
func (m *Manager) RecordError(ctx context.Context, path string, err error) {
	m.TrackFile(ctx, path, FileInfo{
		Status: StatusFailed,
		Error:  err,
	})
}

// ListFiles returns every tracked file sorted by path
func (m *Manager) ListFiles(ctx context.Context) ([]FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]FileInfo, 0, len(m.files))
	for _, info := range m.files {
		files = append(files, info)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func (m *Manager) StartOperation(ctx context.Context, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total = total
	m.processed = 0
	msg := m.formatter.FormatProgress(0, total)
	m.logger.Debug().Int("total", total).Msg(msg)
}

func (m *Manager) UpdateProgress(ctx context.Context, processed int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.processed = processed
	msg := m.formatter.FormatProgress(processed, m.total)
	m.logger.Debug().
		Int("processed", processed).
		Int("total", m.total).
		Msg(msg)
}

func (m *Manager) FinishOperation(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	msg := m.formatter.FormatProgress(m.processed, m.total)
	m.logger.Debug().
		Int("processed", m.processed).
		Int("total", m.total).
		Msg(msg)
}
