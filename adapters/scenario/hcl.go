// Package scenario loads cost assumptions from HCL scenario files.
//
// A scenario file names one set of what-if assumptions; unset attributes
// keep their defaults:
//
//	scenario "injection-vs-printing" {
//	  setup_cost         = 200
//	  variable_cost      = 8
//	  additive_unit_cost = 15
//	}
package scenario

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"amcost/core/model"
	"amcost/internal/errors"
)

// fileContent is the top-level HCL schema
type fileContent struct {
	Scenarios []block `hcl:"scenario,block"`
}

// block is one scenario block; every attribute is optional and overlays
// the base parameters
type block struct {
	Name string `hcl:"name,label"`

	SetupCost             *float64 `hcl:"setup_cost,optional"`
	VariableCost          *float64 `hcl:"variable_cost,optional"`
	AdditiveUnitCost      *float64 `hcl:"additive_unit_cost,optional"`
	ComplexityCoefficient *float64 `hcl:"complexity_coefficient,optional"`
	ComplexityExponent    *float64 `hcl:"complexity_exponent,optional"`
	AdditivePieceCost     *float64 `hcl:"additive_piece_cost,optional"`
	MinVolume             *float64 `hcl:"min_volume,optional"`
	MaxVolume             *float64 `hcl:"max_volume,optional"`
	MinComplexity         *float64 `hcl:"min_complexity,optional"`
	MaxComplexity         *float64 `hcl:"max_complexity,optional"`
	Points                *int     `hcl:"points,optional"`
}

// Scenario is a named set of cost assumptions loaded from a file
type Scenario struct {
	// Name is the scenario block label
	Name string

	// Parameters are the assumptions, validated
	Parameters model.Parameters
}

// Load reads a scenario file and overlays it on the base parameters.
// The file must contain exactly one scenario block. The merged parameters
// are validated before being returned, so a loadable scenario is always
// runnable.
func Load(path string, base model.Parameters) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Parsing("failed to parse scenario file", diags)
	}

	var content fileContent
	if diags := gohcl.DecodeBody(file.Body, nil, &content); diags.HasErrors() {
		return nil, errors.Parsing("failed to decode scenario file", diags)
	}

	if len(content.Scenarios) == 0 {
		return nil, errors.Newf(errors.TypeParsing, "no scenario block in %s", path)
	}
	if len(content.Scenarios) > 1 {
		return nil, errors.Newf(errors.TypeParsing, "expected one scenario block in %s, found %d", path, len(content.Scenarios))
	}

	b := content.Scenarios[0]
	params := overlay(base, b)
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &Scenario{Name: b.Name, Parameters: params}, nil
}

// overlay applies the set attributes of a block onto base parameters
func overlay(base model.Parameters, b block) model.Parameters {
	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}

	setF(&base.SetupCost, b.SetupCost)
	setF(&base.VariableCost, b.VariableCost)
	setF(&base.AdditiveUnitCost, b.AdditiveUnitCost)
	setF(&base.ComplexityCoefficient, b.ComplexityCoefficient)
	setF(&base.ComplexityExponent, b.ComplexityExponent)
	setF(&base.AdditivePieceCost, b.AdditivePieceCost)
	setF(&base.MinVolume, b.MinVolume)
	setF(&base.MaxVolume, b.MaxVolume)
	setF(&base.MinComplexity, b.MinComplexity)
	setF(&base.MaxComplexity, b.MaxComplexity)
	if b.Points != nil {
		base.Points = *b.Points
	}
	return base
}
