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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "java8fix.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Expose the built-in defaults so files can refer to them
	defaults := Default()
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default": cty.ObjectVal(map[string]cty.Value{
				"root":    cty.StringVal(defaults.Root),
				"pattern": cty.StringVal(defaults.Pattern),
			}),
		},
	}

	// Define HCL schema
	type hclConfig struct {
		Root    *string `hcl:"root,optional"`
		Pattern *string `hcl:"pattern,optional"`
		DryRun  *bool   `hcl:"dry_run,optional"`
		Types   *struct {
			MapKey      *string `hcl:"map_key,optional"`
			MapValue    *string `hcl:"map_value,optional"`
			Var         *string `hcl:"var,optional"`
			ListElement *string `hcl:"list_element,optional"`
		} `hcl:"types,block"`
		Var *struct {
			CatchAll *bool    `hcl:"catch_all,optional"`
			Loaders  []string `hcl:"loaders,optional"`
		} `hcl:"var,block"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Overlay on the defaults
	cfg := defaults
	setString(&cfg.Root, hclCfg.Root)
	setString(&cfg.Pattern, hclCfg.Pattern)
	if hclCfg.DryRun != nil {
		cfg.DryRun = *hclCfg.DryRun
	}

	if t := hclCfg.Types; t != nil {
		setString(&cfg.Types.MapKey, t.MapKey)
		setString(&cfg.Types.MapValue, t.MapValue)
		setString(&cfg.Types.Var, t.Var)
		setString(&cfg.Types.ListElement, t.ListElement)
	}

	if v := hclCfg.Var; v != nil {
		if v.CatchAll != nil {
			cfg.Var.CatchAll = *v.CatchAll
		}
		if v.Loaders != nil {
			cfg.Var.Loaders = v.Loaders
		}
	}

	return cfg, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
