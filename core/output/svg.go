// Package output - SVG chart rendering
// Hand-emitted vector chart: two side-by-side panels, one per comparison.
package output

import (
	"fmt"
	"io"
	"strings"

	"amcost/core/engine"
	"amcost/core/model"
)

// SVGFormatter renders a two-panel vector chart
type SVGFormatter struct {
	opts Options
}

// Format returns the format type
func (f *SVGFormatter) Format() Format {
	return FormatSVG
}

// Panel geometry in user units
const (
	svgPanelWidth  = 560
	svgPanelHeight = 420
	svgMarginLeft  = 60
	svgMarginRight = 20
	svgMarginTop   = 40
	svgMarginBot   = 50
)

// svgPanel maps one curve onto panel coordinates
type svgPanel struct {
	originX   int
	title     string
	xLabel    string
	yLabel    string
	curve     model.Curve
	breakEven *float64
	beLabel   string
}

// Render writes the chart document
func (f *SVGFormatter) Render(w io.Writer, result *engine.Result) error {
	width := 2 * svgPanelWidth
	fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, svgPanelHeight, width, svgPanelHeight)
	fmt.Fprintf(w, `<rect width="%d" height="%d" fill="white"/>`+"\n", width, svgPanelHeight)

	panels := []svgPanel{
		{
			originX:   0,
			title:     "Cost per Unit vs Volume",
			xLabel:    "Units Manufactured",
			yLabel:    "Cost per Unit",
			curve:     result.VolumeCurve,
			breakEven: result.VolumeBreakEven,
			beLabel:   "Volume break-even",
		},
		{
			originX:   svgPanelWidth,
			title:     "Cost per Piece vs Geometric Complexity",
			xLabel:    "Geometric Complexity",
			yLabel:    "Cost per Piece",
			curve:     result.ComplexityCurve,
			breakEven: result.ComplexityBreakEven,
			beLabel:   "Complexity break-even",
		},
	}
	for _, p := range panels {
		f.renderPanel(w, p)
	}

	fmt.Fprintln(w, `</svg>`)
	return nil
}

func (f *SVGFormatter) renderPanel(w io.Writer, p svgPanel) {
	plotW := svgPanelWidth - svgMarginLeft - svgMarginRight
	plotH := svgPanelHeight - svgMarginTop - svgMarginBot
	x0 := p.originX + svgMarginLeft
	y0 := svgMarginTop

	first := p.curve.First().Input
	last := p.curve.Last().Input
	maxCost := p.curve.MaxCost()
	if maxCost <= 0 {
		maxCost = 1
	}

	toX := func(input float64) float64 {
		return float64(x0) + (input-first)/(last-first)*float64(plotW)
	}
	toY := func(cost float64) float64 {
		return float64(y0) + (1-cost/maxCost)*float64(plotH)
	}

	// Frame and labels
	fmt.Fprintf(w, `<rect x="%d" y="%d" width="%d" height="%d" fill="none" stroke="#ccc"/>`+"\n",
		x0, y0, plotW, plotH)
	fmt.Fprintf(w, `<text x="%d" y="%d" text-anchor="middle" font-family="sans-serif" font-size="15" font-weight="bold">%s</text>`+"\n",
		x0+plotW/2, y0-14, p.title)
	fmt.Fprintf(w, `<text x="%d" y="%d" text-anchor="middle" font-family="sans-serif" font-size="12">%s</text>`+"\n",
		x0+plotW/2, y0+plotH+36, p.xLabel)
	fmt.Fprintf(w, `<text x="%d" y="%d" text-anchor="middle" font-family="sans-serif" font-size="12" transform="rotate(-90 %d %d)">%s</text>`+"\n",
		x0-42, y0+plotH/2, x0-42, y0+plotH/2, p.yLabel)

	// Axis extents
	fmt.Fprintf(w, `<text x="%d" y="%d" text-anchor="end" font-family="sans-serif" font-size="10">%s</text>`+"\n",
		x0-6, y0+4, money(maxCost))
	fmt.Fprintf(w, `<text x="%d" y="%d" text-anchor="end" font-family="sans-serif" font-size="10">0</text>`+"\n",
		x0-6, y0+plotH+4)
	fmt.Fprintf(w, `<text x="%d" y="%d" text-anchor="middle" font-family="sans-serif" font-size="10">%g</text>`+"\n",
		x0, y0+plotH+16, first)
	fmt.Fprintf(w, `<text x="%d" y="%d" text-anchor="middle" font-family="sans-serif" font-size="10">%g</text>`+"\n",
		x0+plotW, y0+plotH+16, last)

	// Series
	conventional := make([]string, 0, p.curve.Len())
	additive := make([]string, 0, p.curve.Len())
	for _, pt := range p.curve {
		conventional = append(conventional, fmt.Sprintf("%.1f,%.1f", toX(pt.Input), toY(pt.Conventional)))
		additive = append(additive, fmt.Sprintf("%.1f,%.1f", toX(pt.Input), toY(pt.Additive)))
	}
	fmt.Fprintf(w, `<polyline points="%s" fill="none" stroke="#1f77b4" stroke-width="2"/>`+"\n",
		strings.Join(conventional, " "))
	fmt.Fprintf(w, `<polyline points="%s" fill="none" stroke="#2ca02c" stroke-width="2" stroke-dasharray="6,4"/>`+"\n",
		strings.Join(additive, " "))

	// Break-even rule, only inside the sampled range
	if p.breakEven != nil && *p.breakEven >= first && *p.breakEven <= last {
		bx := toX(*p.breakEven)
		fmt.Fprintf(w, `<line x1="%.1f" y1="%d" x2="%.1f" y2="%d" stroke="#ff7f0e" stroke-width="1.5" stroke-dasharray="2,3"/>`+"\n",
			bx, y0, bx, y0+plotH)
		fmt.Fprintf(w, `<text x="%.1f" y="%d" text-anchor="middle" font-family="sans-serif" font-size="10" fill="#ff7f0e">%s: %.2f</text>`+"\n",
			bx, y0+12, p.beLabel, *p.breakEven)
	}

	// Legend
	lx := x0 + 10
	ly := y0 + plotH - 30
	fmt.Fprintf(w, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#1f77b4" stroke-width="2"/>`+"\n", lx, ly, lx+24, ly)
	fmt.Fprintf(w, `<text x="%d" y="%d" font-family="sans-serif" font-size="11">Conventional Manufacturing</text>`+"\n", lx+30, ly+4)
	fmt.Fprintf(w, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#2ca02c" stroke-width="2" stroke-dasharray="6,4"/>`+"\n", lx, ly+16, lx+24, ly+16)
	fmt.Fprintf(w, `<text x="%d" y="%d" font-family="sans-serif" font-size="11">Additive Manufacturing</text>`+"\n", lx+30, ly+20)
}
