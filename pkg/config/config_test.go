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
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:     "valid_yaml",
			filename: "sitesync.yaml",
			config: `
source: /srv/content/Historia
destination: /srv/www/website
answers_file: correct_answers.json
images_dir: images
ignore_patterns:
  - "*.tmp"
  - ".DS_Store"
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/srv/content/Historia", cfg.Source, "source should match")
				assert.Equal(t, "/srv/www/website", cfg.Destination, "destination should match")
				assert.Equal(t, "correct_answers.json", cfg.AnswersFile, "answers file should match")
				assert.Equal(t, "images", cfg.ImagesDir, "images dir should match")
				assert.Len(t, cfg.IgnorePatterns, 2, "should have 2 ignore patterns")
				assert.Equal(t, "*.tmp", cfg.IgnorePatterns[0], "first ignore pattern should match")
			},
		},
		{
			name:     "minimal_yaml",
			filename: "sitesync.yml",
			config: `
source: ../Historia
destination: .
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, filepath.Clean("../Historia"), cfg.Source, "source should be cleaned")
				assert.Equal(t, ".", cfg.Destination, "destination should be cleaned")
				assert.Empty(t, cfg.AnswersFile, "answers file should be unset until defaults resolve")
				assert.Empty(t, cfg.IgnorePatterns, "ignore patterns should be empty")
			},
		},
		{
			name:     "valid_hcl",
			filename: "sitesync.hcl",
			config: `
source          = "/srv/content/Historia"
destination     = "/srv/www/website"
answers_file    = "correct_answers.json"
images_dir      = "images"
ignore_patterns = ["*.bak"]
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/srv/content/Historia", cfg.Source, "source should match")
				assert.Equal(t, "/srv/www/website", cfg.Destination, "destination should match")
				assert.Equal(t, "correct_answers.json", cfg.AnswersFile, "answers file should match")
				assert.Equal(t, []string{"*.bak"}, cfg.IgnorePatterns, "ignore patterns should match")
			},
		},
		{
			name:        "unknown_yaml_field",
			filename:    "sitesync.yaml",
			config:      "bogus_field: true\n",
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:        "invalid_yaml",
			filename:    "sitesync.yaml",
			config:      "source: [unclosed\n",
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:        "invalid_hcl",
			filename:    "sitesync.hcl",
			config:      "source = \n",
			wantErr:     true,
			errContains: "parsing HCL",
		},
		{
			name:        "answers_file_with_path",
			filename:    "sitesync.yaml",
			config:      "answers_file: data/correct_answers.json\n",
			wantErr:     true,
			errContains: "answers_file must be a file name",
		},
		{
			name:        "images_dir_with_path",
			filename:    "sitesync.yaml",
			config:      "images_dir: static/images\n",
			wantErr:     true,
			errContains: "images_dir must be a directory name",
		},
		{
			name:        "unsupported_extension",
			filename:    "sitesync.toml",
			config:      "source = \"/tmp\"\n",
			wantErr:     true,
			errContains: "no parser found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.filename, tt.config)

			cfg, err := Load(testContext(t), path)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(testContext(t), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestYAMLAndHCLDecodeIdentically(t *testing.T) {
	yamlPath := writeConfig(t, "sitesync.yaml", `
source: /srv/Historia
destination: /srv/website
answers_file: correct_answers.json
images_dir: images
ignore_patterns: ["*.tmp"]
`)
	hclPath := writeConfig(t, "sitesync.hcl", `
source          = "/srv/Historia"
destination     = "/srv/website"
answers_file    = "correct_answers.json"
images_dir      = "images"
ignore_patterns = ["*.tmp"]
`)

	ctx := testContext(t)
	fromYAML, err := Load(ctx, yamlPath)
	require.NoError(t, err)
	fromHCL, err := Load(ctx, hclPath)
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromHCL, "both formats should decode to the same config")
}

func TestResolveDefaults(t *testing.T) {
	t.Run("explicit_destination", func(t *testing.T) {
		cfg := &Config{Destination: "/srv/www/website"}
		require.NoError(t, cfg.ResolveDefaults())

		assert.Equal(t, "/srv/www/website", cfg.Destination, "destination should be kept")
		assert.Equal(t, filepath.Join("/srv/www", DefaultSourceName), cfg.Source,
			"source should default to the destination's sibling")
		assert.Equal(t, DefaultAnswersFile, cfg.AnswersFile, "answers file should default")
		assert.Equal(t, DefaultImagesDir, cfg.ImagesDir, "images dir should default")
	})

	t.Run("explicit_fields_kept", func(t *testing.T) {
		cfg := &Config{
			Source:      "/content/quiz",
			Destination: "/www/site",
			AnswersFile: "answers.json",
			ImagesDir:   "img",
		}
		require.NoError(t, cfg.ResolveDefaults())

		assert.Equal(t, "/content/quiz", cfg.Source)
		assert.Equal(t, "answers.json", cfg.AnswersFile)
		assert.Equal(t, "img", cfg.ImagesDir)
	})

	t.Run("from_executable", func(t *testing.T) {
		// With nothing set the destination comes from the binary location.
		cfg := &Config{}
		require.NoError(t, cfg.ResolveDefaults())

		exe, err := os.Executable()
		require.NoError(t, err)
		exe, err = filepath.EvalSymlinks(exe)
		require.NoError(t, err)

		assert.Equal(t, filepath.Dir(exe), cfg.Destination, "destination should be the binary's directory")
		assert.Equal(t, filepath.Join(filepath.Dir(filepath.Dir(exe)), DefaultSourceName), cfg.Source,
			"source should be the sibling content directory")
	})
}

func TestConfigString(t *testing.T) {
	cfg := &Config{
		Source:      "/a",
		Destination: "/b",
		AnswersFile: "answers.json",
		ImagesDir:   "images",
	}
	assert.Contains(t, cfg.String(), "/a -> /b")
}
