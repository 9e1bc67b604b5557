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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const javaSource = `package org.a;

import java.util.List;

class ATest {
    List<String> names = List.of("a", "b");
}
`

// setupProject writes a single test source and returns the project root
func setupProject(t *testing.T) (string, string) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	root := t.TempDir()
	path := filepath.Join(root, "src", "test", "java", "org", "a", "ATest.java")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(javaSource), 0644))
	return root, path
}

func execute(t *testing.T, args ...string) (string, error) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	t.Log(errOut.String())
	return out.String(), err
}

func TestRootCmd(t *testing.T) {
	root, path := setupProject(t)

	out, err := execute(t, "--root", root)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "import java.util.List;\nimport java.util.Arrays;\n")
	assert.Contains(t, string(content), `Arrays.asList("a", "b")`)

	assert.Contains(t, out, "Processing: "+path)
	assert.Contains(t, out, "Fixed: "+path)
	assert.Contains(t, out, "Done. Fixed 1 files")
}

func TestRootCmd_DryRun(t *testing.T) {
	root, path := setupProject(t)

	out, err := execute(t, "-C", root, "-n")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, javaSource, string(content))
	assert.Contains(t, out, "Would fix: "+path)
	assert.Contains(t, out, "Done. 1 files would be fixed")
}

func TestRootCmd_ConfigFile(t *testing.T) {
	root, path := setupProject(t)

	cfgPath := filepath.Join(root, "java8fix.hcl")
	require.NoError(t, os.WriteFile(cfgPath, []byte("dry_run = true\n"), 0644))

	out, err := execute(t, "--root", root, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Would fix: "+path)

	out, err = execute(t, "--root", root, "--config", cfgPath, "--dry-run=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Fixed: "+path, "flag should override the config file")
}

func TestRootCmd_Errors(t *testing.T) {
	root, _ := setupProject(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "missing_explicit_config",
			args:    []string{"--root", root, "--config", filepath.Join(root, "missing.yaml")},
			wantErr: "loading config",
		},
		{
			name:    "invalid_pattern",
			args:    []string{"--root", root, "--pattern", "src/["},
			wantErr: "not a valid glob",
		},
		{
			name:    "missing_root",
			args:    []string{"--root", filepath.Join(root, "missing")},
			wantErr: "checking root",
		},
		{
			name:    "positional_args",
			args:    []string{"extra"},
			wantErr: "unknown command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
