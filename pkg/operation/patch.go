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

package operation

import (
	"bytes"
	"context"

	"github.com/walteh/java8fix/pkg/log"
	"github.com/walteh/java8fix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📊 Summary is the result of a patch run
type Summary struct {
	Processed    int  // Files read
	Fixed        int  // Files rewritten, or that would be in a dry run
	Replacements int  // Sites rewritten across all changed files
	DryRun       bool // Whether writes were skipped
}

// 🩹 PatchOperation rewrites every discovered file in place
type PatchOperation struct {
	BaseOperation
	summary Summary
}

var _ Operation = (*PatchOperation)(nil)

// 🏭 NewPatchOperation creates a new patch operation
func NewPatchOperation(opts Options) (*PatchOperation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, errors.Errorf("creating patch operation: %w", err)
	}
	return &PatchOperation{BaseOperation: base}, nil
}

func (op *PatchOperation) Name() string { return "patch" }

// Summary returns the counts of the last Execute
func (op *PatchOperation) Summary() Summary {
	return op.summary
}

// 🏃 Execute discovers the files and patches them one after another
func (op *PatchOperation) Execute(ctx context.Context) error {
	op.summary = Summary{DryRun: op.Config.DryRun}

	files, err := Discover(ctx, op.Config.Root, op.Config.Pattern)
	if err != nil {
		return errors.Errorf("discovering files: %w", err)
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("patching cancelled: %w", err)
		}
		if err := op.patchFile(ctx, file); err != nil {
			return errors.Errorf("patching %s: %w", op.StatusMgr.Path(file), err)
		}
	}

	op.Logger.Summary(op.summary.Processed, op.summary.Fixed, op.summary.DryRun)
	return nil
}

// 📄 patchFile patches a single file
func (op *PatchOperation) patchFile(ctx context.Context, file string) error {
	display := op.StatusMgr.Path(file)
	op.Logger.Processing(display)

	content, err := op.StatusMgr.ReadFile(ctx, file)
	if err != nil {
		return err
	}
	op.summary.Processed++

	result, err := op.Rewriter.Rewrite(ctx, bytes.NewReader(content))
	if err != nil {
		return errors.Errorf("rewriting: %w", err)
	}

	fileStatus := status.StatusUnchanged
	var diff string
	switch {
	case !result.WasModified:
	case op.Config.DryRun:
		fileStatus = status.StatusWouldFix
		diff = status.Diff(result.OriginalContent, result.ModifiedContent)
	default:
		if err := op.StatusMgr.WriteFileAtomic(ctx, file, result.ModifiedContent); err != nil {
			return err
		}
		fileStatus = status.StatusFixed
	}

	if fileStatus != status.StatusUnchanged {
		op.summary.Fixed++
		op.summary.Replacements += result.ReplacementCount
	}

	op.StatusMgr.UpdateStatus(ctx, file, status.FileInfo{
		Status:       fileStatus,
		Replacements: result.ReplacementCount,
		Size:         int64(len(result.ModifiedContent)),
	})

	op.Logger.LogFileOperation(ctx, log.FileOperation{
		Path:         display,
		Status:       fileStatus.String(),
		Replacements: result.ReplacementCount,
		Diff:         diff,
	})

	return nil
}
