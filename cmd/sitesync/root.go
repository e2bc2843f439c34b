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

package main

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/historia/sitesync/pkg/config"
	"github.com/historia/sitesync/pkg/fsops"
	"github.com/historia/sitesync/pkg/log"
	"github.com/historia/sitesync/pkg/sync"
)

var (
	// Flags
	configFile  string
	source      string
	destination string
	debug       bool
)

// NewRootCmd creates the root command. Running it with no arguments performs
// the sync using defaults resolved from the binary's own location.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sitesync",
		Short: "Update the website folder from the content source folder",
		Long: `sitesync publishes quiz content into the website directory.
It copies:
1. The correct answers file
2. All files in the images/ folder`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (.yaml or .hcl)")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().StringVar(&source, "source", "", "override source root")
	cmd.Flags().StringVar(&destination, "destination", "", "override destination root")

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// runSync loads the configuration and runs the synchronizer
func runSync(ctx context.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	logger := log.NewUserLogger(ctx)
	logger.Header(cfg.Source, cfg.Destination)

	s, err := sync.New(sync.Options{
		Config: cfg,
		FS:     fsops.New(nil),
		Logger: logger,
	})
	if err != nil {
		return errors.Errorf("creating synchronizer: %w", err)
	}

	res, err := s.Run(ctx)
	if err != nil {
		logger.Errorf("update failed: %v", err)
		return err
	}

	logger.Successf("update completed: answers %s, %d image(s) copied, %d skipped",
		res.AnswersStatus, res.ImagesCopied, res.ImagesIgnored)
	return nil
}

// loadConfig builds the effective configuration: config file if given, then
// flag overrides, then defaults resolved from the binary's location
func loadConfig(ctx context.Context) (*config.Config, error) {
	cfg := &config.Config{}

	if configFile != "" {
		loaded, err := config.Load(ctx, configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if source != "" {
		cfg.Source = source
	}
	if destination != "" {
		cfg.Destination = destination
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, errors.Errorf("resolving defaults: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Stringer("config", cfg).Msg("configuration resolved")
	return cfg, nil
}
