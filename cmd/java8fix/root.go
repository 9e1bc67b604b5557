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
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/java8fix/pkg/config"
	"github.com/walteh/java8fix/pkg/log"
	"github.com/walteh/java8fix/pkg/operation"
	"github.com/walteh/java8fix/pkg/status"
	"github.com/walteh/java8fix/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// rootFlags holds the command line flags
type rootFlags struct {
	configFile string
	root       string
	pattern    string
	dryRun     bool
	debug      bool
}

// newRootCmd creates the java8fix command
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "java8fix",
		Short: "Rewrite Java test sources so they compile on Java 8",
		Long: `java8fix rewrites src/test/java/**/*.java in place:
  - List.of(...) becomes Arrays.asList(...), adding the Arrays import
  - Map.of(...) becomes a HashMap initializer
  - var declarations get an explicit type
  - bare List declarations get a type parameter

The rewrite is textual, not a Java parser. Files are overwritten without a
backup, so commit first or use --dry-run.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags)
		},
	}

	addRootFlags(cmd, flags)
	return cmd
}

// addRootFlags adds the flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.Flags().StringVarP(&flags.configFile, "config", "c", config.DefaultFile, "config file path (.yaml, .yml or .hcl)")
	cmd.Flags().StringVarP(&flags.root, "root", "C", config.DefaultRoot, "directory the pattern is resolved against")
	cmd.Flags().StringVarP(&flags.pattern, "pattern", "p", config.DefaultPattern, "glob selecting the files to patch")
	cmd.Flags().BoolVarP(&flags.dryRun, "dry-run", "n", false, "report what would change without writing")
	cmd.Flags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
}

// newLogger configures the console and zerolog output based on flags
func newLogger(cmd *cobra.Command, flags *rootFlags) *log.Logger {
	level := zerolog.WarnLevel
	if flags.debug {
		level = zerolog.DebugLevel
	}
	return log.NewDefault(cmd.OutOrStdout(), cmd.ErrOrStderr(), level)
}

// loadConfig loads the config file and applies flag overrides
func loadConfig(ctx context.Context, cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(ctx, flags.configFile)
	} else {
		cfg, err = config.LoadOptional(ctx, flags.configFile)
	}
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("root") {
		cfg.Root = flags.root
	}
	if cmd.Flags().Changed("pattern") {
		cfg.Pattern = flags.pattern
	}
	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun = flags.dryRun
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating flags: %w", err)
	}
	return cfg, nil
}

func run(cmd *cobra.Command, flags *rootFlags) error {
	ctx := log.NewContext(cmd.Context(), newLogger(cmd, flags))
	logger := log.FromContext(ctx)

	cfg, err := loadConfig(ctx, cmd, flags)
	if err != nil {
		return err
	}
	zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Str("location", cfg.Location()).Msg("configuration loaded")

	op, err := operation.NewPatchOperation(operation.Options{
		Config:    cfg,
		StatusMgr: status.New(cfg.Root),
		Rewriter:  text.NewRewriter(cfg.RewriteOptions()),
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	return operation.NewRunner(logger.Zerolog()).Run(ctx, op)
}
