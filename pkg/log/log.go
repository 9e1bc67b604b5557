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

package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎯 FileOperation is the outcome of patching one file
type FileOperation struct {
	Path         string // File path as shown to the user
	Status       string // fixed, unchanged or would-fix
	Replacements int    // Number of sites rewritten
	Diff         string // Changed lines, only set for dry runs
}

// 🎯 Logger writes progress lines to the console and mirrors them to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🏭 NewDefault creates a logger with human readable structured output on structured
func NewDefault(console, structured io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: structured}).With().Timestamp().Logger().Level(level)
	return New(console, zlog)
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context, or a silent one
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		return New(io.Discard, zerolog.Nop())
	}
	return logger
}

// 🎯 NewContext adds the logger to context, along with its zerolog logger
func NewContext(ctx context.Context, l *Logger) context.Context {
	ctx = l.zlog.WithContext(ctx)
	return context.WithValue(ctx, contextKey{}, l)
}

// Zerolog returns the structured logger
func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.zlog
}

func (l *Logger) println(c *color.Color, line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, c.Sprint(line))
}

// 📝 Processing logs the start of a file
func (l *Logger) Processing(path string) {
	l.println(color.New(color.Faint), "Processing: "+path)
	l.zlog.Debug().Str("file", path).Msg("processing")
}

// 📝 LogFileOperation logs the outcome of a file
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	switch op.Status {
	case "fixed":
		l.println(color.New(color.FgGreen), "Fixed: "+op.Path)
	case "would-fix":
		l.println(color.New(color.FgYellow), "Would fix: "+op.Path)
		l.logDiff(op.Diff)
	default:
		l.println(color.New(color.FgCyan), "No changes needed: "+op.Path)
	}

	l.zlog.Info().
		Str("file", op.Path).
		Str("status", op.Status).
		Int("replacements", op.Replacements).
		Msg("file operation")
}

func (l *Logger) logDiff(diff string) {
	if diff == "" {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		c := color.New(color.FgRed)
		if strings.HasPrefix(line, "+") {
			c = color.New(color.FgGreen)
		}
		fmt.Fprintf(l.console, "    %s\n", c.Sprint(line))
	}
}

// 📝 Summary logs the final count of the run
func (l *Logger) Summary(processed, fixed int, dryRun bool) {
	msg := fmt.Sprintf("Done. Fixed %d files", fixed)
	if dryRun {
		msg = fmt.Sprintf("Done. %d files would be fixed", fixed)
	}

	l.mu.Lock()
	fmt.Fprint(l.console, "\n"+pterm.Success.Sprintln(msg))
	l.mu.Unlock()

	l.zlog.Info().
		Int("processed", processed).
		Int("fixed", fixed).
		Bool("dry_run", dryRun).
		Msg("run complete")
}
