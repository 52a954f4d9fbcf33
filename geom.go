package snostyle

import (
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// The constructors below wrap the plotting library's element
// constructors and apply a merged style bundle: per-call overrides
// first, then the theme's bundle, then the default theme's. This is
// the only "logic" of the house style: every element role has fixed
// aesthetics unless deliberately overridden.

// Histogram is a step histogram with a legend thumbnail.
type Histogram struct {
	*plotter.Histogram
}

// Thumbnail draws the histogram outline as a horizontal line, so a
// histogram can be listed in a legend.
func (h Histogram) Thumbnail(c *draw.Canvas) {
	y := c.Center().Y
	c.StrokeLine2(h.LineStyle, c.Min.X, y, c.Max.X, y)
}

// NewHistogram bins vs into n bins and styles the result. The house
// bundle yields an outlined step histogram in blue; histtype "bar"
// fills the bins instead.
func NewHistogram(vs plotter.Valuer, n int, t *Theme, style AesMapping) (Histogram, error) {
	t = themeOf(t)
	st := MergeStyles(style, t.HistStyle, DefaultTheme.HistStyle)

	h, err := plotter.NewHist(vs, n)
	if err != nil {
		return Histogram{}, err
	}

	col := styleColor(st)
	h.LineStyle.Color = col
	h.LineStyle.Width = vg.Points(String2Float(st["linewidth"], 0, 20))
	h.LineStyle.Dashes = String2Dashes(st["linestyle"])
	if st["histtype"] == "bar" {
		h.FillColor = col
	} else {
		h.FillColor = nil
	}
	return Histogram{h}, nil
}

// NewLine styles a line plot; the house bundle is a solid red line,
// the convention for fit functions.
func NewLine(xys plotter.XYer, t *Theme, style AesMapping) (*plotter.Line, error) {
	t = themeOf(t)
	st := MergeStyles(style, t.LineStyle, DefaultTheme.LineStyle)

	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = styleColor(st)
	l.LineStyle.Width = vg.Points(String2Float(st["linewidth"], 0, 20))
	l.LineStyle.Dashes = String2Dashes(st["linestyle"])
	return l, nil
}

// NewScatter styles a scatter plot; the house bundle is black filled
// square markers, the convention for data points.
func NewScatter(xys plotter.XYer, t *Theme, style AesMapping) (*plotter.Scatter, error) {
	t = themeOf(t)
	st := MergeStyles(style, t.PointStyle, DefaultTheme.PointStyle)

	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Shape = String2Glyph(st["marker"])
	s.GlyphStyle.Color = styleColor(st)
	s.GlyphStyle.Radius = vg.Points(String2Float(st["size"], 0.1, 50))
	return s, nil
}

// YErrorBars are vertical error bars with a legend thumbnail.
type YErrorBars struct {
	*plotter.YErrorBars
}

// Thumbnail draws a single vertical bar with caps.
func (e YErrorBars) Thumbnail(c *draw.Canvas) {
	x := c.Center().X
	c.StrokeLine2(e.LineStyle, x, c.Min.Y, x, c.Max.Y)
	c.StrokeLine2(e.LineStyle, x-e.CapWidth/2, c.Min.Y, x+e.CapWidth/2, c.Min.Y)
	c.StrokeLine2(e.LineStyle, x-e.CapWidth/2, c.Max.Y, x+e.CapWidth/2, c.Max.Y)
}

// NewYErrorBars styles vertical error bars; the house bundle is black
// with small caps and no connecting line, the convention for a single
// data series.
func NewYErrorBars(data interface {
	plotter.XYer
	plotter.YErrorer
}, t *Theme, style AesMapping) (YErrorBars, error) {
	t = themeOf(t)
	st := MergeStyles(style, t.ErrorBarStyle, DefaultTheme.ErrorBarStyle)

	e, err := plotter.NewYErrorBars(data)
	if err != nil {
		return YErrorBars{}, err
	}
	e.LineStyle.Color = styleColor(st)
	if w, ok := st["linewidth"]; ok {
		e.LineStyle.Width = vg.Points(String2Float(w, 0, 20))
	}
	e.CapWidth = vg.Points(2 * String2Float(st["capsize"], 0, 20))
	return YErrorBars{e}, nil
}

// YErrorPoints couples xy values with a uniform symmetric y error,
// ready for NewScatter and NewYErrorBars.
type YErrorPoints struct {
	plotter.XYs
	plotter.YErrors
}

func NewYErrorPoints(x, y []float64, yerr float64) YErrorPoints {
	pts := make(plotter.XYs, len(x))
	errs := make(plotter.YErrors, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
		errs[i].Low = yerr
		errs[i].High = yerr
	}
	return YErrorPoints{XYs: pts, YErrors: errs}
}
