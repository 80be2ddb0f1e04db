// Package output - Formatter rendering tests
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"amcost/core/engine"
	"amcost/core/model"
)

func defaultResult(t *testing.T) *engine.Result {
	t.Helper()
	result, err := engine.New().Compare(model.Default())
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	return result
}

func noBreakEvenResult(t *testing.T) *engine.Result {
	t.Helper()
	params := model.Default()
	params.VariableCost = 15
	params.AdditiveUnitCost = 15
	params.AdditivePieceCost = 0
	result, err := engine.New().Compare(params)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	return result
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New("pdf", DefaultOptions()); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestCLIReportContainsBreakEvens(t *testing.T) {
	f, err := New(FormatCLI, Options{NoColor: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf, defaultResult(t)); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Volume break-even: 28.57 units") {
		t.Errorf("report missing volume break-even line:\n%s", out)
	}
	if !strings.Contains(out, "Complexity break-even: 31.62 complexity units") {
		t.Errorf("report missing complexity break-even line:\n%s", out)
	}
	if !strings.Contains(out, "Cost per Unit vs Volume") {
		t.Error("report missing volume chart header")
	}
}

func TestCLIReportWithoutBreakEvens(t *testing.T) {
	f, err := New(FormatCLI, Options{NoColor: true, NoChart: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf, noBreakEvenResult(t)); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Volume break-even: not defined with current cost assumptions.") {
		t.Errorf("missing volume sentinel line:\n%s", out)
	}
	if !strings.Contains(out, "Complexity break-even: not defined with current cost assumptions.") {
		t.Errorf("missing complexity sentinel line:\n%s", out)
	}
	if strings.Contains(out, "Cost per Unit vs Volume") {
		t.Error("NoChart report should not include chart sections")
	}
}

func TestJSONReportRoundTrips(t *testing.T) {
	f, err := New(FormatJSON, Options{IncludeCurves: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf, defaultResult(t)); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var decoded engine.Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.VolumeBreakEven == nil {
		t.Fatal("decoded result missing volume break-even")
	}
	if len(decoded.VolumeCurve) != 500 {
		t.Errorf("decoded volume curve has %d points, want 500", len(decoded.VolumeCurve))
	}
}

func TestJSONReportElidesCurvesByDefault(t *testing.T) {
	f, err := New(FormatJSON, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf, defaultResult(t)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(buf.String(), "volume_curve") {
		t.Error("curves should be elided without IncludeCurves")
	}
}

func TestMarkdownReport(t *testing.T) {
	f, err := New(FormatMarkdown, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf, defaultResult(t)); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "# Manufacturing Cost Comparison") {
		t.Error("missing title")
	}
	if !strings.Contains(out, "**Volume**: 28.57 units") {
		t.Errorf("missing volume break-even:\n%s", out)
	}
}

func TestSVGReport(t *testing.T) {
	f, err := New(FormatSVG, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf, defaultResult(t)); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "<svg ") {
		t.Fatalf("output does not start with <svg: %.40q", out)
	}
	if strings.Count(out, "<polyline") != 4 {
		t.Errorf("expected 4 polylines (two series per panel), got %d", strings.Count(out, "<polyline"))
	}
	if !strings.Contains(out, "Volume break-even: 28.57") {
		t.Error("missing volume break-even rule label")
	}
	if !strings.Contains(out, "</svg>") {
		t.Error("missing closing tag")
	}
}

func TestSVGOmitsOutOfRangeBreakEven(t *testing.T) {
	params := model.Default()
	params.MaxVolume = 20 // break-even at 28.57 falls outside the axis
	result, err := engine.New().Compare(params)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	f, _ := New(FormatSVG, Options{})
	var buf bytes.Buffer
	if err := f.Render(&buf, result); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(buf.String(), "Volume break-even:") {
		t.Error("break-even rule should be suppressed outside the sampled range")
	}
}

func TestASCIIChartMarksBreakEven(t *testing.T) {
	result := defaultResult(t)
	chart := asciiChart(chartSpec{
		title:     "test",
		xLabel:    "x",
		yLabel:    "y",
		curve:     result.VolumeCurve,
		breakEven: result.VolumeBreakEven,
		width:     40,
		height:    10,
	})
	if !strings.Contains(chart, ":") {
		t.Error("expected break-even rule in chart")
	}
	if !strings.Contains(chart, "*") || !strings.Contains(chart, "·") {
		t.Error("expected both series in chart")
	}
}
