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

package text

import (
	"context"
	"io"
)

// Rule is a single textual transformation over a whole file buffer
type Rule interface {
	// Name identifies the rule in logs and in Result.RuleCounts
	Name() string

	// Apply returns the rewritten content and the number of sites rewritten
	Apply(content string) (string, int)
}

// RuleCount records how many sites a rule rewrote
type RuleCount struct {
	Rule  string
	Count int
}

// Result contains the results of a rewrite
type Result struct {
	// WasModified is true when the final content differs from the original
	WasModified bool

	// ReplacementCount is the total number of sites rewritten by all rules
	ReplacementCount int

	// RuleCounts holds one entry per rule, in pipeline order
	RuleCounts []RuleCount

	// OriginalContent is the content before any rule ran
	OriginalContent []byte

	// ModifiedContent is the content after the last rule ran
	ModifiedContent []byte
}

// TextRewriter defines the interface for whole-file rewriting
type TextRewriter interface {
	// Rewrite reads all of content and runs it through the rule pipeline
	Rewrite(ctx context.Context, content io.Reader) (*Result, error)
}
