// Package engine orchestrates the cost comparison.
// CLI and formatters are thin wrappers around this engine.
package engine

import (
	"time"

	"go.uber.org/zap"

	"amcost/core/model"
	"amcost/internal/logging"
)

// Version is the tool version stamped into results
const Version = "0.1.0"

// Result is the complete output of one comparison run
type Result struct {
	// Parameters are the cost assumptions the run used
	Parameters model.Parameters `json:"parameters"`

	// VolumeCurve is the sampled cost-per-unit vs volume comparison
	VolumeCurve model.Curve `json:"volume_curve,omitempty"`

	// ComplexityCurve is the sampled cost-per-piece vs complexity comparison
	ComplexityCurve model.Curve `json:"complexity_curve,omitempty"`

	// VolumeBreakEven is the volume where both methods cost the same,
	// nil when no finite positive solution exists
	VolumeBreakEven *float64 `json:"volume_break_even,omitempty"`

	// ComplexityBreakEven is the complexity score where both methods
	// cost the same, nil when no finite positive solution exists
	ComplexityBreakEven *float64 `json:"complexity_break_even,omitempty"`

	// Metadata contains execution context
	Metadata Metadata `json:"metadata"`
}

// Metadata contains execution context
type Metadata struct {
	// Timestamp is when the comparison ran
	Timestamp string `json:"timestamp"`

	// Duration is how long the comparison took
	Duration string `json:"duration"`

	// Version is the tool version
	Version string `json:"version"`
}

// Engine runs both comparison models over one set of parameters
type Engine struct {
	log *zap.Logger
}

// New creates an engine
func New() *Engine {
	return &Engine{log: logging.Logger}
}

// Compare validates the parameters, samples both curves, and solves both
// break-even points. Pure computation apart from logging; safe to call
// concurrently.
func (e *Engine) Compare(params model.Parameters) (*Result, error) {
	start := time.Now()

	if err := params.Validate(); err != nil {
		return nil, err
	}

	volumeModel := params.Volume()
	complexityModel := params.Complexity()

	volumeCurve, err := volumeModel.Sample(params.MinVolume, params.MaxVolume, params.Points)
	if err != nil {
		return nil, err
	}

	complexityCurve, err := complexityModel.Sample(params.MinComplexity, params.MaxComplexity, params.Points)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Parameters:      params,
		VolumeCurve:     volumeCurve,
		ComplexityCurve: complexityCurve,
		Metadata: Metadata{
			Timestamp: start.Format(time.RFC3339),
			Duration:  time.Since(start).String(),
			Version:   Version,
		},
	}

	if v, ok := volumeModel.BreakEvenVolume(); ok {
		result.VolumeBreakEven = &v
		e.log.Debug("volume break-even found", zap.Float64("volume", v))
	} else {
		e.log.Debug("no volume break-even for current assumptions")
	}

	if c, ok := complexityModel.BreakEvenComplexity(); ok {
		result.ComplexityBreakEven = &c
		e.log.Debug("complexity break-even found", zap.Float64("complexity", c))
	} else {
		e.log.Debug("no complexity break-even for current assumptions")
	}

	return result, nil
}
