// Package engine - Orchestration tests
package engine

import (
	"math"
	"testing"

	"amcost/core/model"
	"amcost/internal/errors"
)

func TestCompareDefaults(t *testing.T) {
	result, err := New().Compare(model.Default())
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	if result.VolumeCurve.Len() != 500 {
		t.Errorf("volume curve has %d points, want 500", result.VolumeCurve.Len())
	}
	if result.ComplexityCurve.Len() != 500 {
		t.Errorf("complexity curve has %d points, want 500", result.ComplexityCurve.Len())
	}

	if result.VolumeBreakEven == nil {
		t.Fatal("expected a volume break-even with default assumptions")
	}
	if want := 200.0 / 7.0; math.Abs(*result.VolumeBreakEven-want) > 1e-9 {
		t.Errorf("volume break-even = %g, want %g", *result.VolumeBreakEven, want)
	}

	if result.ComplexityBreakEven == nil {
		t.Fatal("expected a complexity break-even with default assumptions")
	}
	if want := math.Sqrt(1000); math.Abs(*result.ComplexityBreakEven-want) > 1e-9 {
		t.Errorf("complexity break-even = %g, want %g", *result.ComplexityBreakEven, want)
	}

	if result.Metadata.Version != Version {
		t.Errorf("metadata version = %q, want %q", result.Metadata.Version, Version)
	}
}

func TestCompareRejectsInvalidParametersBeforeSampling(t *testing.T) {
	params := model.Default()
	params.Points = 1

	result, err := New().Compare(params)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("expected CONFIG_ERROR, got %v", err)
	}
	if result != nil {
		t.Errorf("expected nil result on invalid parameters, got %+v", result)
	}
}

func TestCompareOmitsUndefinedBreakEvens(t *testing.T) {
	params := model.Default()
	params.VariableCost = 15
	params.AdditiveUnitCost = 15 // parallel asymptote, no crossing

	result, err := New().Compare(params)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if result.VolumeBreakEven != nil {
		t.Errorf("expected no volume break-even, got %g", *result.VolumeBreakEven)
	}
	// Complexity side unaffected
	if result.ComplexityBreakEven == nil {
		t.Error("expected complexity break-even to remain defined")
	}
}
