// Package output - ASCII chart rendering
package output

import (
	"fmt"
	"strings"

	"amcost/core/model"
)

// chartSpec describes one ASCII panel
type chartSpec struct {
	title     string
	xLabel    string
	yLabel    string
	curve     model.Curve
	breakEven *float64
	width     int
	height    int
}

// asciiChart renders a curve as a character grid. The conventional series
// plots as '*', the additive series as '·', overlaps as '+'. A vertical ':'
// rule marks the break-even column when it falls inside the sampled range,
// matching how the chart marker is suppressed out of range.
func asciiChart(spec chartSpec) string {
	w, h := spec.width, spec.height
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	grid := make([][]rune, h)
	for r := range grid {
		grid[r] = make([]rune, w)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}

	maxCost := spec.curve.MaxCost()
	if maxCost <= 0 {
		maxCost = 1
	}
	first := spec.curve.First().Input
	last := spec.curve.Last().Input

	rowFor := func(cost float64) int {
		r := h - 1 - int(cost/maxCost*float64(h-1)+0.5)
		if r < 0 {
			r = 0
		}
		if r > h-1 {
			r = h - 1
		}
		return r
	}

	// Break-even rule goes in first so the series draw over it
	if spec.breakEven != nil && *spec.breakEven >= first && *spec.breakEven <= last {
		col := int((*spec.breakEven - first) / (last - first) * float64(w-1))
		for r := 0; r < h; r++ {
			grid[r][col] = ':'
		}
	}

	n := spec.curve.Len()
	for col := 0; col < w; col++ {
		p := spec.curve[col*(n-1)/(w-1)]
		ar := rowFor(p.Additive)
		cr := rowFor(p.Conventional)
		grid[ar][col] = '·'
		if cr == ar {
			grid[cr][col] = '+'
		} else {
			grid[cr][col] = '*'
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %s\n", spec.title)
	for r, row := range grid {
		switch r {
		case 0:
			fmt.Fprintf(&b, "%8.1f ┤%s\n", maxCost, string(row))
		case h - 1:
			fmt.Fprintf(&b, "%8.1f ┤%s\n", 0.0, string(row))
		default:
			fmt.Fprintf(&b, "         │%s\n", string(row))
		}
	}
	fmt.Fprintf(&b, "         └%s\n", strings.Repeat("─", w))
	fmt.Fprintf(&b, "          %-*.1f%*.1f\n", w/2, first, w-w/2, last)
	fmt.Fprintf(&b, "          %s (y: %s)   * conventional  · additive  : break-even\n", spec.xLabel, spec.yLabel)
	return b.String()
}
