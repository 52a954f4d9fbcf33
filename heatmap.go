package snostyle

import (
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
)

// UnitGrid adapts a matrix to the plotter's grid interface, with both
// coordinates normalized to the unit interval. Row r, column c of the
// matrix is the value at (x, y) = (c/(cols-1), r/(rows-1)).
type UnitGrid struct {
	mat.Matrix
}

func (g UnitGrid) Dims() (c, r int) {
	r, c = g.Matrix.Dims()
	return c, r
}

func (g UnitGrid) Z(c, r int) float64 { return g.Matrix.At(r, c) }

func (g UnitGrid) X(c int) float64 {
	_, n := g.Matrix.Dims()
	if n < 2 {
		return 0
	}
	return float64(c) / float64(n-1)
}

func (g UnitGrid) Y(r int) float64 {
	n, _ := g.Matrix.Dims()
	if n < 2 {
		return 0
	}
	return float64(r) / float64(n-1)
}

// HeatColorMap returns the house color map for 2-D plots over
// [min, max]: the black-body map, reversed so that small values are
// bright, matching the palette used in the ROOT template. It is
// colour-vision-deficiency friendly.
func HeatColorMap(min, max float64) palette.ColorMap {
	cm := moreland.BlackBody()
	cm.SetMin(min)
	cm.SetMax(max)
	return reversed{cm}
}

type reversed struct {
	palette.ColorMap
}

func (r reversed) At(v float64) (color.Color, error) {
	return r.ColorMap.At(r.Max() + r.Min() - v)
}

func (r reversed) Palette(n int) palette.Palette {
	cols := r.ColorMap.Palette(n).Colors()
	rev := make(colorSlice, len(cols))
	for i, c := range cols {
		rev[len(cols)-1-i] = c
	}
	return rev
}

type colorSlice []color.Color

func (c colorSlice) Colors() []color.Color { return c }

// NewHeatMap renders grid as a color map using the house palette with
// n color steps.
func NewHeatMap(grid plotter.GridXYZ, n int) *plotter.HeatMap {
	min, max := gridMinMax(grid)
	return plotter.NewHeatMap(grid, HeatColorMap(min, max).Palette(n))
}

func gridMinMax(g plotter.GridXYZ) (min, max float64) {
	cols, rows := g.Dims()
	min, max = g.Z(0, 0), g.Z(0, 0)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			if v := g.Z(c, r); v < min {
				min = v
			} else if v > max {
				max = v
			}
		}
	}
	return min, max
}

// NewColorBarPlot builds the vertical colorbar that accompanies a
// color-map plot, as its own themed plot with a hidden x axis.
func NewColorBarPlot(cm palette.ColorMap, label string, t *Theme) *plot.Plot {
	t = themeOf(t)

	p := plot.New()
	p.BackgroundColor = t.Figure.Background
	bar := &plotter.ColorBar{ColorMap: cm}
	bar.Vertical = true
	p.Add(bar)
	p.HideX()

	p.Y.Label.Text = label
	p.Y.Label.TextStyle.Font = t.font(t.Fonts.ColorBarSize)
	p.Y.Tick.Label.Font = t.font(t.Fonts.TickSize)
	p.Y.LineStyle.Width = t.Axes.LineWidth
	return p
}
