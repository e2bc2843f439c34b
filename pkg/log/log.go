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

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"github.com/historia/sitesync/pkg/status"
)

// 📢 UserLogger provides user-friendly feedback about sync progress.
// Every console line is mirrored into zerolog for debugging.
type UserLogger struct {
	zlog      zerolog.Logger
	console   io.Writer
	formatter status.FileFormatter
	mu        sync.Mutex
}

// 🏭 NewUserLogger creates a logger writing to stdout, mirroring to the
// zerolog logger carried in ctx
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		zlog:      *zerolog.Ctx(ctx),
		console:   os.Stdout,
		formatter: status.NewDefaultFileFormatter(),
	}
}

// 🔧 WithConsole redirects console output, for tests
func (u *UserLogger) WithConsole(w io.Writer) *UserLogger {
	u.console = w
	return u
}

// 📝 LogFileChange prints one line for an action taken or skipped
func (u *UserLogger) LogFileChange(change status.FileChange) {
	u.mu.Lock()
	defer u.mu.Unlock()

	fmt.Fprintln(u.console, "    "+u.formatter.FormatFileChange(change))

	ev := u.zlog.Info()
	if change.Err != nil {
		ev = u.zlog.Error().Err(change.Err)
	}
	ev.
		Str("path", change.Path).
		Str("status", change.Status.String()).
		Int64("size", change.Size).
		Msg("file change")
}

// 📝 Header prints the run header
func (u *UserLogger) Header(source, destination string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	fmt.Fprintf(u.console, "%s %s\n",
		pterm.DefaultBasicText.WithStyle(pterm.NewStyle(pterm.Bold, pterm.FgCyan)).Sprint("sitesync"),
		pterm.Gray(fmt.Sprintf("• %s -> %s", source, destination)))
	u.zlog.Info().Str("source", source).Str("destination", destination).Msg("starting sync")
}

// 📝 Success logs a success message
func (u *UserLogger) Success(msg string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	pterm.Success.WithWriter(u.console).Println(msg)
	u.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (u *UserLogger) Warning(msg string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	pterm.Warning.WithWriter(u.console).Println(msg)
	u.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (u *UserLogger) Error(msg string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	pterm.Error.WithWriter(u.console).Println(msg)
	u.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (u *UserLogger) Info(msg string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	pterm.Info.WithWriter(u.console).Println(msg)
	u.zlog.Info().Msg(msg)
}

// 📝 Successf logs a formatted success message
func (u *UserLogger) Successf(format string, args ...interface{}) {
	u.Success(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (u *UserLogger) Warningf(format string, args ...interface{}) {
	u.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (u *UserLogger) Errorf(format string, args ...interface{}) {
	u.Error(fmt.Sprintf(format, args...))
}

// 📝 Infof logs a formatted info message
func (u *UserLogger) Infof(format string, args ...interface{}) {
	u.Info(fmt.Sprintf(format, args...))
}
