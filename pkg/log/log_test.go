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

package log_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/historia/sitesync/pkg/log"
	"github.com/historia/sitesync/pkg/status"
)

func newTestLogger(t *testing.T) (*log.UserLogger, *bytes.Buffer) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())
	buf := &bytes.Buffer{}
	return log.NewUserLogger(ctx).WithConsole(buf), buf
}

func TestLogFileChange(t *testing.T) {
	u, buf := newTestLogger(t)

	u.LogFileChange(status.FileChange{
		Path:   "/www/images/a.png",
		Status: status.StatusCreated,
		Size:   3,
	})

	assert.Contains(t, buf.String(), "/www/images/a.png")
	assert.Contains(t, buf.String(), "created")
}

func TestHeader(t *testing.T) {
	u, buf := newTestLogger(t)

	u.Header("/content/Historia", "/www/website")

	assert.Contains(t, buf.String(), "sitesync")
	assert.Contains(t, buf.String(), "/content/Historia")
	assert.Contains(t, buf.String(), "/www/website")
}

func TestMessageLevels(t *testing.T) {
	u, buf := newTestLogger(t)

	u.Successf("update completed: %d image(s)", 4)
	u.Warningf("source %s does not exist", "/content/Historia/images")
	u.Errorf("copy failed: %s", "disk full")
	u.Infof("creating %s", "/www/website/images")

	out := buf.String()
	assert.Contains(t, out, "update completed: 4 image(s)")
	assert.Contains(t, out, "source /content/Historia/images does not exist")
	assert.Contains(t, out, "copy failed: disk full")
	assert.Contains(t, out, "creating /www/website/images")
}
