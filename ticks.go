package snostyle

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// MultipleTicker places major ticks at every multiple of Delta, with
// Minor-1 unlabelled minor ticks between consecutive majors.
type MultipleTicker struct {
	Delta float64

	// Minor is the number of subdivisions per major interval.
	// Values below 2 mean no minor ticks.
	Minor int
}

var _ plot.Ticker = MultipleTicker{}

func (t MultipleTicker) Ticks(min, max float64) []plot.Tick {
	if t.Delta <= 0 || max <= min {
		return nil
	}
	minor := t.Minor
	if minor < 2 {
		minor = 1
	}
	step := t.Delta / float64(minor)

	var ticks []plot.Tick
	for i := int(math.Ceil(min / step)); float64(i)*step <= max+step/1e9; i++ {
		v := float64(i) * step
		tick := plot.Tick{Value: v}
		if i%minor == 0 {
			tick.Label = strconv.FormatFloat(v, 'g', 10, 64)
		}
		ticks = append(ticks, tick)
	}
	return ticks
}

// Frame draws the plot border and inward tick marks derived from the
// tickers of both axes: on the bottom and left edge when Primary is
// set, and mirrored on the top and right edge when Mirror is set. It
// reproduces the inward, four-sided ticks of the collaboration style,
// which the plotting library does not draw natively. With outward
// native ticks only the mirrored edges are wanted, otherwise the
// marks would cross the axis line.
type Frame struct {
	// LineStyle strokes the border box.
	LineStyle draw.LineStyle

	// TickStyle strokes the tick marks.
	TickStyle draw.LineStyle

	MajorLength vg.Length
	MinorLength vg.Length

	Primary bool
	Mirror  bool
}

var _ plot.Plotter = (*Frame)(nil)

// Plot implements plot.Plotter.
func (f *Frame) Plot(c draw.Canvas, plt *plot.Plot) {
	c.StrokeLines(f.LineStyle, []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Min.X, Y: c.Min.Y},
	})

	trX, trY := plt.Transforms(&c)

	for _, tick := range plt.X.Tick.Marker.Ticks(plt.X.Min, plt.X.Max) {
		if tick.Value < plt.X.Min || tick.Value > plt.X.Max {
			continue
		}
		x := trX(tick.Value)
		l := f.length(tick)
		if f.Primary {
			c.StrokeLine2(f.TickStyle, x, c.Min.Y, x, c.Min.Y+l)
		}
		if f.Mirror {
			c.StrokeLine2(f.TickStyle, x, c.Max.Y, x, c.Max.Y-l)
		}
	}

	for _, tick := range plt.Y.Tick.Marker.Ticks(plt.Y.Min, plt.Y.Max) {
		if tick.Value < plt.Y.Min || tick.Value > plt.Y.Max {
			continue
		}
		y := trY(tick.Value)
		l := f.length(tick)
		if f.Primary {
			c.StrokeLine2(f.TickStyle, c.Min.X, y, c.Min.X+l, y)
		}
		if f.Mirror {
			c.StrokeLine2(f.TickStyle, c.Max.X, y, c.Max.X-l, y)
		}
	}
}

func (f *Frame) length(t plot.Tick) vg.Length {
	if t.IsMinor() {
		return f.MinorLength
	}
	return f.MajorLength
}
