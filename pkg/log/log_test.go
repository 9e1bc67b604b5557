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
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "processing",
			op: func(t *testing.T, logger *Logger) {
				logger.Processing("src/test/java/A.java")
			},
			wantLogs: []string{"Processing: src/test/java/A.java"},
		},
		{
			name: "fixed",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{
					Path:         "src/test/java/A.java",
					Status:       "fixed",
					Replacements: 2,
				})
			},
			wantLogs: []string{"Fixed: src/test/java/A.java"},
		},
		{
			name: "unchanged",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{
					Path:   "src/test/java/A.java",
					Status: "unchanged",
				})
			},
			wantLogs: []string{"No changes needed: src/test/java/A.java"},
		},
		{
			name: "would_fix_with_diff",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{
					Path:   "src/test/java/A.java",
					Status: "would-fix",
					Diff:   "- List.of(1)\n+ Arrays.asList(1)\n",
				})
			},
			wantLogs: []string{
				"Would fix: src/test/java/A.java",
				"    - List.of(1)",
				"    + Arrays.asList(1)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, zerolog.New(zerolog.NewTestWriter(t)))

			tt.op(t, logger)

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			require.Len(t, lines, len(tt.wantLogs))
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, lines[i])
			}
		})
	}
}

func TestLogger_Summary(t *testing.T) {
	tests := []struct {
		name   string
		fixed  int
		dryRun bool
		want   string
	}{
		{name: "write", fixed: 3, want: "Done. Fixed 3 files"},
		{name: "dry_run", fixed: 1, dryRun: true, want: "Done. 1 files would be fixed"},
		{name: "nothing", fixed: 0, want: "Done. Fixed 0 files"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, zerolog.New(zerolog.NewTestWriter(t)))

			logger.Summary(5, tt.fixed, tt.dryRun)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	var zbuf bytes.Buffer
	logger := New(&buf, zerolog.New(&zbuf))

	ctx := NewContext(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))

	zerolog.Ctx(ctx).Info().Msg("structured")
	assert.Contains(t, zbuf.String(), "structured", "zerolog logger should travel with the context")

	silent := FromContext(context.Background())
	require.NotNil(t, silent)
	silent.Processing("ignored")
	assert.Empty(t, buf.String())
}
