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

package config

import (
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// 🎛️ Default sub-item names inside the source and destination roots
const (
	DefaultSourceName  = "Historia"
	DefaultAnswersFile = "correct_answers.json"
	DefaultImagesDir   = "images"
)

// 🧭 ResolveDefaults fills unset fields from the location of the running
// binary: the destination root is the directory containing the executable,
// the source root is its sibling named after the content source.
func (cfg *Config) ResolveDefaults() error {
	if cfg.Destination == "" {
		exe, err := os.Executable()
		if err != nil {
			return errors.Errorf("locating executable: %w", err)
		}
		exe, err = filepath.EvalSymlinks(exe)
		if err != nil {
			return errors.Errorf("resolving executable path: %w", err)
		}
		cfg.Destination = filepath.Dir(exe)
	}
	if cfg.Source == "" {
		cfg.Source = filepath.Join(filepath.Dir(cfg.Destination), DefaultSourceName)
	}
	if cfg.AnswersFile == "" {
		cfg.AnswersFile = DefaultAnswersFile
	}
	if cfg.ImagesDir == "" {
		cfg.ImagesDir = DefaultImagesDir
	}
	return cfg.Validate()
}
