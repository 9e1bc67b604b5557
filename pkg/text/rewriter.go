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
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Rewriter runs content through an ordered list of rules
type Rewriter struct {
	rules []Rule
}

var _ TextRewriter = (*Rewriter)(nil)

// NewRewriter creates a Rewriter with the standard pipeline for opts
func NewRewriter(opts Options) *Rewriter {
	return &Rewriter{rules: Rules(opts)}
}

// NewRewriterWithRules creates a Rewriter with a custom pipeline
func NewRewriterWithRules(rules ...Rule) *Rewriter {
	return &Rewriter{rules: rules}
}

// Rewrite implements TextRewriter.Rewrite
func (r *Rewriter) Rewrite(ctx context.Context, content io.Reader) (*Result, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}
	if !utf8.Valid(originalContent) {
		return nil, errors.Errorf("content is not valid UTF-8")
	}

	result := &Result{
		OriginalContent: originalContent,
		RuleCounts:      make([]RuleCount, 0, len(r.rules)),
	}

	logger := zerolog.Ctx(ctx)
	current := string(originalContent)
	for _, rule := range r.rules {
		next, count := rule.Apply(current)
		if count > 0 {
			logger.Debug().Str("rule", rule.Name()).Int("count", count).Msg("rule applied")
		}
		result.RuleCounts = append(result.RuleCounts, RuleCount{Rule: rule.Name(), Count: count})
		result.ReplacementCount += count
		current = next
	}

	result.ModifiedContent = []byte(current)
	result.WasModified = current != string(originalContent)
	return result, nil
}
