package snostyle

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PreliminaryText is the fixed annotation every figure showing
// collaboration data must carry, verbatim.
const PreliminaryText = "SNO+ Preliminary"

// Watermark draws the mandatory annotation on a plot. The zero Text
// renders PreliminaryText. Coordinates are data coordinates; with NDC
// set they are fractions of the data area instead, (0,0) bottom left
// to (1,1) top right.
type Watermark struct {
	X, Y float64
	NDC  bool

	Text      string
	TextStyle text.Style
}

var _ plot.Plotter = (*Watermark)(nil)

// NewWatermark places the annotation at (x, y) in data coordinates,
// styled by the theme's watermark bundle.
func NewWatermark(x, y float64, t *Theme) *Watermark {
	t = themeOf(t)
	st := MergeStyles(t.WatermarkStyle, DefaultTheme.WatermarkStyle)

	size := t.Fonts.WatermarkSize
	if s, ok := st["size"]; ok {
		size = vg.Points(String2Float(s, 1, 100))
	}
	return &Watermark{
		X: x,
		Y: y,
		TextStyle: text.Style{
			Color: styleColor(st),
			Font:  t.font(size),
		},
	}
}

// Plot implements plot.Plotter.
func (w *Watermark) Plot(c draw.Canvas, plt *plot.Plot) {
	sty := w.TextStyle
	if sty.Handler == nil {
		sty.Handler = plt.TextHandler
	}

	txt := w.Text
	if txt == "" {
		txt = PreliminaryText
	}

	var pt vg.Point
	if w.NDC {
		pt.X = c.Min.X + vg.Length(w.X)*(c.Max.X-c.Min.X)
		pt.Y = c.Min.Y + vg.Length(w.Y)*(c.Max.Y-c.Min.Y)
	} else {
		trX, trY := plt.Transforms(&c)
		pt.X = trX(w.X)
		pt.Y = trY(w.Y)
	}
	c.FillText(sty, pt, txt)
}
