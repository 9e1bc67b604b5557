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
	"os"
	"path/filepath"
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents the outcome of patching a file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusFixed                // File was rewritten
	StatusUnchanged            // No rule changed the file
	StatusWouldFix             // File would be rewritten, but this is a dry run
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusFixed:
		return "fixed"
	case StatusUnchanged:
		return "unchanged"
	case StatusWouldFix:
		return "would-fix"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains metadata about a patched file
type FileInfo struct {
	Path         string     // Path relative to the manager's base directory
	Status       FileStatus // Outcome of the patch
	Replacements int        // Number of sites the rules rewrote
	Size         int64      // Size of the final content in bytes
}

// 💾 FileManager handles the file system side of patching
type FileManager interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFileAtomic(ctx context.Context, path string, content []byte) error
}

// 📈 StatusReporter tracks per-file outcomes
type StatusReporter interface {
	UpdateStatus(ctx context.Context, path string, info FileInfo)
	Files() []FileInfo
	Count(status FileStatus) int
}

// 🔧 Manager implements both FileManager and StatusReporter
type Manager struct {
	baseDir string

	mu    sync.RWMutex
	order []string
	files map[string]FileInfo
}

var (
	_ FileManager    = (*Manager)(nil)
	_ StatusReporter = (*Manager)(nil)
)

// 🏭 New creates a new status manager rooted at baseDir
func New(baseDir string) *Manager {
	return &Manager{
		baseDir: filepath.Clean(baseDir),
		files:   make(map[string]FileInfo),
	}
}

// 🔒 Path returns the on-disk path for a path relative to the base directory
func (m *Manager) Path(path string) string {
	return filepath.Join(m.baseDir, path)
}

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(m.Path(path))
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	if !utf8.Valid(content) {
		return nil, errors.Errorf("file is not valid UTF-8")
	}
	return content, nil
}

// WriteFileAtomic replaces the file through a temp file in the same directory.
// The existing file mode is kept.
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	absPath := m.Path(path)

	mode := os.FileMode(0644)
	if info, err := os.Stat(absPath); err == nil {
		mode = info.Mode().Perm()
	} else if !os.IsNotExist(err) {
		return errors.Errorf("checking file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(absPath), "."+filepath.Base(absPath)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, mode); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("setting file mode: %w", err)
	}

	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", absPath).Int("size", len(content)).Msg("file written")
	return nil
}

func (m *Manager) UpdateStatus(ctx context.Context, path string, info FileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	info.Path = path
	if _, ok := m.files[path]; !ok {
		m.order = append(m.order, path)
	}
	m.files[path] = info

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Str("status", info.Status.String()).
		Int("replacements", info.Replacements).
		Msg("status updated")
}

// Files returns the tracked files in the order they were first reported
func (m *Manager) Files() []FileInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]FileInfo, 0, len(m.order))
	for _, path := range m.order {
		out = append(out, m.files[path])
	}
	return out
}

func (m *Manager) Count(status FileStatus) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, info := range m.files {
		if info.Status == status {
			n++
		}
	}
	return n
}
