// Package chart renders the fixed set of PNG charts from aggregation rows
// and the correlation matrix. It consumes analysis output only and carries no
// statistics of its own.
package chart

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/isacmj7/stroke-prediction-analysis/internal/analysis"
	"github.com/isacmj7/stroke-prediction-analysis/internal/utils"
)

var barBlue = color.RGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff}

// Renderer draws charts into a fixed output directory.
type Renderer struct {
	dir string
}

// NewRenderer returns a Renderer rooted at dir, creating it if needed.
func NewRenderer(dir string) (*Renderer, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("ensure chart dir: %w", err)
	}
	return &Renderer{dir: dir}, nil
}

// RateBars draws a bar chart of stroke rate per group. When ordering is
// non-nil the bars follow that label sequence instead of the rows' default
// order; rows are not modified.
func (r *Renderer) RateBars(filename, title, xLabel string, rows []analysis.AggregationRow, ordering []string) (string, error) {
	sorted := make([]analysis.AggregationRow, len(rows))
	copy(sorted, rows)
	if ordering != nil {
		analysis.SortRows(sorted, ordering)
	}

	vals := make(plotter.Values, len(sorted))
	labels := make([]string, len(sorted))
	for i, row := range sorted {
		vals[i] = row.StrokeRate
		labels[i] = row.Value
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Stroke Rate (%)"

	bars, err := plotter.NewBarChart(vals, vg.Points(40))
	if err != nil {
		return "", fmt.Errorf("bar chart %s: %w", filename, err)
	}
	bars.Color = barBlue
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(labels...)

	return r.save(p, filename)
}

// Distribution draws the stroke vs no-stroke patient counts.
func (r *Renderer) Distribution(filename string, s analysis.Summary) (string, error) {
	p := plot.New()
	p.Title.Text = "Distribution of Stroke Cases"
	p.X.Label.Text = "Stroke Status"
	p.Y.Label.Text = "Number of Patients"

	vals := plotter.Values{float64(s.NoStrokeCases), float64(s.StrokeCases)}
	bars, err := plotter.NewBarChart(vals, vg.Points(60))
	if err != nil {
		return "", fmt.Errorf("bar chart %s: %w", filename, err)
	}
	bars.Color = barBlue
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX("No Stroke", "Stroke")

	return r.save(p, filename)
}

// Heatmap draws the correlation matrix with a fixed [-1,1] color scale.
func (r *Renderer) Heatmap(filename string, m analysis.CorrMatrix) (string, error) {
	p := plot.New()
	p.Title.Text = "Correlation Heatmap of Features"

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	h := plotter.NewHeatMap(corrGrid{m}, cm.Palette(255))
	h.Min = -1
	h.Max = 1
	p.Add(h)
	p.NominalX(m.Columns...)
	p.NominalY(m.Columns...)

	return r.save(p, filename)
}

func (r *Renderer) save(p *plot.Plot, filename string) (string, error) {
	path := filepath.Join(r.dir, filename)
	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return "", fmt.Errorf("save chart %s: %w", filename, err)
	}
	return path, nil
}

// corrGrid adapts a CorrMatrix to plotter.GridXYZ on a unit grid.
type corrGrid struct {
	m analysis.CorrMatrix
}

func (g corrGrid) Dims() (c, r int)   { return len(g.m.Columns), len(g.m.Columns) }
func (g corrGrid) Z(c, r int) float64 { return g.m.Values[r][c] }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }
