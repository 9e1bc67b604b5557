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
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/walteh/java8fix/pkg/config"
	"github.com/walteh/java8fix/pkg/log"
	"github.com/walteh/java8fix/pkg/status"
	"github.com/walteh/java8fix/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a unit of work run by the OperationRunner
type Operation interface {
	// Name identifies the operation in logs
	Name() string
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains the dependencies of an operation
type Options struct {
	// Config is the run configuration
	Config *config.Config
	// StatusMgr reads and writes files and tracks their outcome
	StatusMgr *status.Manager
	// Rewriter transforms file content
	Rewriter text.TextRewriter
	// Logger reports progress, defaults to a silent logger
	Logger *log.Logger
}

// 🔍 validate checks the required options and fills in defaults
func (opts *Options) validate() error {
	if opts.Config == nil {
		return errors.Errorf("config is required")
	}
	if opts.StatusMgr == nil {
		return errors.Errorf("status manager is required")
	}
	if opts.Rewriter == nil {
		return errors.Errorf("rewriter is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, zerolog.Nop())
	}
	return nil
}

// 🏗️ BaseOperation provides common functionality for operations
type BaseOperation struct {
	Options
}

// 🏭 NewBaseOperation creates a new base operation
func NewBaseOperation(opts Options) (BaseOperation, error) {
	if err := opts.validate(); err != nil {
		return BaseOperation{}, err
	}
	return BaseOperation{Options: opts}, nil
}
