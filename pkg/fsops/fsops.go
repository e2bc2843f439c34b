// Copyright 2025 the sitesync authors
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

package fsops

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// 💾 Manager handles all file system operations
type Manager struct {
	fs afero.Fs
}

// 🏭 New creates a new manager backed by the given filesystem.
// A nil fs means the real OS filesystem.
func New(fs afero.Fs) *Manager {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Manager{fs: fs}
}

// 🔍 Exists reports whether path exists (file or directory)
func (m *Manager) Exists(path string) (bool, error) {
	ok, err := afero.Exists(m.fs, path)
	if err != nil {
		return false, errors.Errorf("checking existence: %w", err)
	}
	return ok, nil
}

// 🔍 DirExists reports whether path exists and is a directory
func (m *Manager) DirExists(path string) (bool, error) {
	ok, err := afero.DirExists(m.fs, path)
	if err != nil {
		return false, errors.Errorf("checking directory existence: %w", err)
	}
	return ok, nil
}

// 📁 EnsureDir creates the directory and any missing parents
func (m *Manager) EnsureDir(path string) error {
	if err := m.fs.MkdirAll(path, 0755); err != nil {
		return errors.Errorf("creating directory: %w", err)
	}
	return nil
}

// 📋 ListRegularFiles returns the names of the regular files directly inside
// dir. Subdirectories are not recursed into. Names are sorted for stable
// output only; each copy is independent of order.
func (m *Manager) ListRegularFiles(dir string) ([]string, error) {
	infos, err := afero.ReadDir(m.fs, dir)
	if err != nil {
		return nil, errors.Errorf("listing directory: %w", err)
	}

	var names []string
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		names = append(names, info.Name())
	}
	sort.Strings(names)
	return names, nil
}

// 📄 CopyFile copies src to dst byte-for-byte, preserving the source's
// permission bits and modification time, and returns the source file info.
// The content goes through a temp file in the destination directory and is
// renamed over the target, so a failed copy never leaves a partially
// written dst behind.
func (m *Manager) CopyFile(ctx context.Context, src, dst string) (os.FileInfo, error) {
	zerolog.Ctx(ctx).Debug().Str("src", src).Str("dst", dst).Msg("copying file")

	srcFile, err := m.fs.Open(src)
	if err != nil {
		return nil, errors.Errorf("opening source file: %w", err)
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return nil, errors.Errorf("statting source file: %w", err)
	}

	tmpFile, err := afero.TempFile(m.fs, filepath.Dir(dst), "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return nil, errors.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := io.Copy(tmpFile, srcFile); err != nil {
		tmpFile.Close()
		m.fs.Remove(tmpPath)
		return nil, errors.Errorf("copying file content: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		m.fs.Remove(tmpPath)
		return nil, errors.Errorf("closing temp file: %w", err)
	}

	if err := m.fs.Chmod(tmpPath, srcInfo.Mode().Perm()); err != nil {
		m.fs.Remove(tmpPath)
		return nil, errors.Errorf("setting file mode: %w", err)
	}

	if err := m.fs.Rename(tmpPath, dst); err != nil {
		m.fs.Remove(tmpPath)
		return nil, errors.Errorf("renaming temp file: %w", err)
	}

	if err := m.fs.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime()); err != nil {
		return nil, errors.Errorf("setting file times: %w", err)
	}

	return srcInfo, nil
}
