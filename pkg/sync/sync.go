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

package sync

import (
	"context"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/historia/sitesync/pkg/config"
	"github.com/historia/sitesync/pkg/fsops"
	"github.com/historia/sitesync/pkg/log"
	"github.com/historia/sitesync/pkg/status"
)

// 🚨 ErrSourceRootMissing is returned when the source root itself is absent.
// It is the only fatal precondition; missing sub-items are warnings.
var ErrSourceRootMissing = errors.Base("source root does not exist")

// 🔧 Options contains configuration for the synchronizer
type Options struct {
	// Config is the sitesync configuration
	Config *config.Config
	// FS performs the filesystem operations
	FS *fsops.Manager
	// Logger reports each action to the user
	Logger *log.UserLogger
}

// 🔄 Synchronizer copies the answers artifact and the image set from the
// source root into the destination root
type Synchronizer struct {
	cfg    *config.Config
	fs     *fsops.Manager
	logger *log.UserLogger
}

// 📊 Result records what a run did
type Result struct {
	AnswersStatus status.FileStatus   // Outcome of the answers artifact step
	ImagesCopied  int                 // Image files written
	ImagesIgnored int                 // Image files skipped by ignore pattern
	Changes       []status.FileChange // One entry per item considered
}

// 🏭 New creates a new synchronizer with the given options
func New(opts Options) (*Synchronizer, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.FS == nil {
		return nil, errors.New("fs manager is required")
	}
	if opts.Logger == nil {
		return nil, errors.New("logger is required")
	}
	return &Synchronizer{
		cfg:    opts.Config,
		fs:     opts.FS,
		logger: opts.Logger,
	}, nil
}

// 🏃 Run performs the two copy steps. The answers artifact and the image set
// are independent: a missing sub-item is logged and skipped, and the run
// still succeeds. Only a missing source root (or a failing copy) is fatal.
func (s *Synchronizer) Run(ctx context.Context) (*Result, error) {
	zerolog.Ctx(ctx).Debug().Stringer("config", s.cfg).Msg("starting sync run")

	ok, err := s.fs.DirExists(s.cfg.Source)
	if err != nil {
		return nil, errors.Errorf("checking source root: %w", err)
	}
	if !ok {
		return nil, errors.Errorf("%w: %s", ErrSourceRootMissing, s.cfg.Source)
	}

	res := &Result{AnswersStatus: status.StatusSkipped}

	if err := s.syncAnswers(ctx, res); err != nil {
		return nil, errors.Errorf("updating %s: %w", s.cfg.AnswersFile, err)
	}

	if err := s.syncImages(ctx, res); err != nil {
		return nil, errors.Errorf("updating %s: %w", s.cfg.ImagesDir, err)
	}

	return res, nil
}

// 📄 syncAnswers copies the answers artifact if it exists at the source
func (s *Synchronizer) syncAnswers(ctx context.Context, res *Result) error {
	src := filepath.Join(s.cfg.Source, s.cfg.AnswersFile)
	dst := filepath.Join(s.cfg.Destination, s.cfg.AnswersFile)

	ok, err := s.fs.Exists(src)
	if err != nil {
		return errors.Errorf("checking source file: %w", err)
	}
	if !ok {
		s.logger.Warningf("source file %s does not exist, skipping", src)
		s.record(res, status.FileChange{
			Path:        dst,
			Status:      status.StatusSkipped,
			Description: "source file missing",
		})
		return nil
	}

	change, err := s.copyItem(ctx, src, dst)
	if err != nil {
		return err
	}
	s.record(res, change)
	res.AnswersStatus = change.Status
	return nil
}

// 🖼️ syncImages copies all regular files from the source image directory
// into the destination image directory, creating it if needed. Files in
// subdirectories are left alone.
func (s *Synchronizer) syncImages(ctx context.Context, res *Result) error {
	srcDir := filepath.Join(s.cfg.Source, s.cfg.ImagesDir)
	dstDir := filepath.Join(s.cfg.Destination, s.cfg.ImagesDir)

	ok, err := s.fs.DirExists(srcDir)
	if err != nil {
		return errors.Errorf("checking source directory: %w", err)
	}
	if !ok {
		s.logger.Warningf("source directory %s does not exist, skipping", srcDir)
		s.record(res, status.FileChange{
			Path:        dstDir,
			Status:      status.StatusSkipped,
			Description: "source directory missing",
		})
		return nil
	}

	dstExists, err := s.fs.DirExists(dstDir)
	if err != nil {
		return errors.Errorf("checking destination directory: %w", err)
	}
	if !dstExists {
		s.logger.Infof("creating destination directory %s", dstDir)
	}
	if err := s.fs.EnsureDir(dstDir); err != nil {
		return errors.Errorf("creating destination directory: %w", err)
	}

	names, err := s.fs.ListRegularFiles(srcDir)
	if err != nil {
		return errors.Errorf("listing source directory: %w", err)
	}

	for _, name := range names {
		if s.shouldIgnore(ctx, name) {
			res.ImagesIgnored++
			s.record(res, status.FileChange{
				Path:        filepath.Join(dstDir, name),
				Status:      status.StatusSkipped,
				Description: "ignored by pattern",
			})
			continue
		}

		change, err := s.copyItem(ctx, filepath.Join(srcDir, name), filepath.Join(dstDir, name))
		if err != nil {
			return errors.Errorf("copying %s: %w", name, err)
		}
		s.record(res, change)
		res.ImagesCopied++
	}

	return nil
}

// 📥 copyItem copies one file and reports the outcome. The status is derived
// from a destination existence check before the copy, never from content
// comparison.
func (s *Synchronizer) copyItem(ctx context.Context, src, dst string) (status.FileChange, error) {
	existed, err := s.fs.Exists(dst)
	if err != nil {
		return status.FileChange{}, errors.Errorf("checking destination file: %w", err)
	}

	info, err := s.fs.CopyFile(ctx, src, dst)
	if err != nil {
		return status.FileChange{}, errors.Errorf("copying file: %w", err)
	}

	st := status.StatusCreated
	if existed {
		st = status.StatusReplaced
	}
	return status.FileChange{
		Path:   dst,
		Status: st,
		Size:   info.Size(),
		Mode:   info.Mode().Perm(),
	}, nil
}

// 🔍 shouldIgnore checks an image file name against the ignore patterns
func (s *Synchronizer) shouldIgnore(ctx context.Context, name string) bool {
	for _, pattern := range s.cfg.IgnorePatterns {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Str("name", name).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			zerolog.Ctx(ctx).Debug().Str("name", name).Str("pattern", pattern).Msg("file ignored by pattern")
			return true
		}
	}
	return false
}

// 📝 record appends a change to the result and logs it
func (s *Synchronizer) record(res *Result, change status.FileChange) {
	res.Changes = append(res.Changes, change)
	s.logger.LogFileChange(change)
}
