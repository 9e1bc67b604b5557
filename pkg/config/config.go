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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/java8fix/pkg/text"
	"gitlab.com/tozd/go/errors"
)

const (
	// DefaultRoot is the directory the search pattern is resolved against
	DefaultRoot = "."

	// DefaultPattern selects the Java test sources of a maven style project
	DefaultPattern = "src/test/java/**/*.java"

	// DefaultFile is the config file picked up when no --config is given
	DefaultFile = ".java8fix.yaml"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes, on top of the defaults
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🏷️ Types are the Java type names written by the rewrite rules
type Types struct {
	MapKey      string `json:"map_key" yaml:"map_key"`
	MapValue    string `json:"map_value" yaml:"map_value"`
	Var         string `json:"var" yaml:"var"`
	ListElement string `json:"list_element" yaml:"list_element"`
}

// 🔧 VarPolicy controls how var declarations are rewritten
type VarPolicy struct {
	CatchAll bool     `json:"catch_all" yaml:"catch_all"` // Rewrite every var, not just known loaders
	Loaders  []string `json:"loaders" yaml:"loaders"`     // Factory methods with a known return type
}

// 📚 Config represents the complete configuration
type Config struct {
	Root    string    `json:"root" yaml:"root"`
	Pattern string    `json:"pattern" yaml:"pattern"`
	DryRun  bool      `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
	Types   Types     `json:"types" yaml:"types"`
	Var     VarPolicy `json:"var" yaml:"var"`

	location string
}

// 🏭 Default returns the configuration used when no file is present
func Default() *Config {
	opts := text.DefaultOptions()
	return &Config{
		Root:    DefaultRoot,
		Pattern: DefaultPattern,
		Types: Types{
			MapKey:      opts.MapKeyType,
			MapValue:    opts.MapValueType,
			Var:         opts.VarType,
			ListElement: opts.ListElementType,
		},
		Var: VarPolicy{
			CatchAll: opts.VarCatchAll,
			Loaders:  opts.SchemaLoaders,
		},
	}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}
	cfg.location = path

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🎯 LoadOptional loads path, falling back to Default when the file does not exist
func LoadOptional(ctx context.Context, path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("no config file, using defaults")
		return Default(), nil
	}
	return Load(ctx, path)
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Root == "" {
		cfg.Root = DefaultRoot
	}
	cfg.Root = filepath.Clean(cfg.Root)

	if cfg.Pattern == "" {
		return errors.Errorf("pattern is required")
	}
	if !doublestar.ValidatePattern(cfg.Pattern) {
		return errors.Errorf("pattern %q is not a valid glob", cfg.Pattern)
	}

	for _, field := range []struct{ name, value string }{
		{"types.map_key", cfg.Types.MapKey},
		{"types.map_value", cfg.Types.MapValue},
		{"types.var", cfg.Types.Var},
		{"types.list_element", cfg.Types.ListElement},
	} {
		if strings.TrimSpace(field.value) == "" {
			return errors.Errorf("%s is required", field.name)
		}
	}

	for i, loader := range cfg.Var.Loaders {
		if strings.TrimSpace(loader) == "" {
			return errors.Errorf("var.loaders[%d] is empty", i)
		}
	}

	return nil
}

// 🔄 RewriteOptions converts the config into rewrite rule options
func (cfg *Config) RewriteOptions() text.Options {
	return text.Options{
		MapKeyType:      cfg.Types.MapKey,
		MapValueType:    cfg.Types.MapValue,
		VarType:         cfg.Types.Var,
		ListElementType: cfg.Types.ListElement,
		SchemaLoaders:   cfg.Var.Loaders,
		VarCatchAll:     cfg.Var.CatchAll,
	}
}

// 📍 Location returns the file the config was loaded from, if any
func (cfg *Config) Location() string {
	return cfg.location
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	mode := "write"
	if cfg.DryRun {
		mode = "dry-run"
	}
	return fmt.Sprintf("%s (%s, %s)", filepath.Join(cfg.Root, cfg.Pattern), mode, cfg.Types.Var)
}
