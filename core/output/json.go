// Package output - JSON report
package output

import (
	"encoding/json"
	"io"

	"amcost/core/engine"
	"amcost/internal/errors"
)

// JSONFormatter renders a machine-readable report
type JSONFormatter struct {
	opts Options
}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the result as indented JSON. Curves are elided unless
// IncludeCurves is set; break-evens and parameters are always present.
func (f *JSONFormatter) Render(w io.Writer, result *engine.Result) error {
	out := *result
	if !f.opts.IncludeCurves {
		out.VolumeCurve = nil
		out.ComplexityCurve = nil
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&out); err != nil {
		return errors.Render("failed to encode result", err)
	}
	return nil
}
