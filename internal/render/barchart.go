// Package render draws chart series as images.
package render

import (
	"fmt"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/score-law/litigation-analytics/specs"
)

type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

const (
	barWidth   = 50
	barSpacing = 30
	chartWidth = 640
	height     = 420
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case PNG, SVG:
		return f, nil
	default:
		return "", fmt.Errorf("unknown image format %q", s)
	}
}

// Bars renders series as a bar chart. A nil or zero-width domain falls back to
// a value axis spanning the bars and zero.
func Bars(w io.Writer, series specs.ChartSeriesSpec, domain *specs.DomainSpec, format Format) error {
	if len(series.Points) == 0 {
		return fmt.Errorf("chart %q has no bars", series.Title)
	}

	provider, err := rendererFor(format)
	if err != nil {
		return err
	}

	bars := make([]chart.Value, 0, len(series.Points))
	for _, p := range series.Points {
		bars = append(bars, chart.Value{Label: p.Label, Value: p.Value})
	}

	yAxis := chart.YAxis{
		Name:  valueAxisName(series.Comparative),
		Range: valueRange(series.Points, domain),
	}

	bc := chart.BarChart{
		Title:      series.Title,
		Width:      max(chartWidth, len(bars)*(barWidth+barSpacing)+160),
		Height:     height,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis:      yAxis,
		Bars:       bars,
	}
	if series.Comparative {
		bc.UseBaseValue = true
		bc.BaseValue = 0
	}

	if err := bc.Render(provider, w); err != nil {
		return fmt.Errorf("render %s chart %q: %w", format, series.Title, err)
	}
	return nil
}

// valueRange never has zero width; go-chart refuses to draw one.
func valueRange(points []specs.ChartPointSpec, domain *specs.DomainSpec) *chart.ContinuousRange {
	if domain != nil && domain.Max > domain.Min {
		return &chart.ContinuousRange{Min: domain.Min, Max: domain.Max}
	}
	lo, hi := 0.0, 0.0
	for _, p := range points {
		lo = math.Min(lo, p.Value)
		hi = math.Max(hi, p.Value)
	}
	if hi == lo {
		hi = lo + 1
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

func rendererFor(format Format) (chart.RendererProvider, error) {
	switch format {
	case PNG:
		return chart.PNG, nil
	case SVG:
		return chart.SVG, nil
	default:
		return nil, fmt.Errorf("unknown image format %q", format)
	}
}

func valueAxisName(comparative bool) string {
	if comparative {
		return "% vs. average"
	}
	return "% of cases"
}
