// Package output renders comparison results.
// This package produces human and machine-readable reports.
package output

import (
	"io"

	"amcost/core/engine"
	"amcost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal report with ASCII charts
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"

	// FormatSVG is a two-panel vector chart
	FormatSVG Format = "svg"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *engine.Result) error
}

// Options adjust rendering across formatters
type Options struct {
	// NoColor disables ANSI colors in the CLI report
	NoColor bool

	// NoChart omits the ASCII charts from the CLI report
	NoChart bool

	// IncludeCurves embeds the full sampled curves in JSON output
	IncludeCurves bool

	// ChartWidth is the ASCII chart width in columns
	ChartWidth int

	// ChartHeight is the ASCII chart height in rows
	ChartHeight int
}

// DefaultOptions returns the stock rendering options
func DefaultOptions() Options {
	return Options{
		ChartWidth:  64,
		ChartHeight: 16,
	}
}

// New returns the formatter for a format name
func New(format Format, opts Options) (Formatter, error) {
	if opts.ChartWidth <= 0 {
		opts.ChartWidth = DefaultOptions().ChartWidth
	}
	if opts.ChartHeight <= 0 {
		opts.ChartHeight = DefaultOptions().ChartHeight
	}

	switch format {
	case FormatCLI:
		return &CLIFormatter{opts: opts}, nil
	case FormatJSON:
		return &JSONFormatter{opts: opts}, nil
	case FormatMarkdown:
		return &MarkdownFormatter{opts: opts}, nil
	case FormatSVG:
		return &SVGFormatter{opts: opts}, nil
	default:
		return nil, errors.Newf(errors.TypeRender, "unknown output format: %s", format)
	}
}

// Formats lists the supported format names
func Formats() []Format {
	return []Format{FormatCLI, FormatJSON, FormatMarkdown, FormatSVG}
}
