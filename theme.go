package snostyle

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// TickDirection selects whether tick marks point out of or into the
// data area. The collaboration style uses inward ticks.
type TickDirection int

const (
	TickIn TickDirection = iota
	TickOut
)

// FontSet holds the typeface and the per-role sizes of a theme.
type FontSet struct {
	Typeface font.Typeface
	Variant  font.Variant

	TitleSize     vg.Length
	LabelSize     vg.Length
	TickSize      vg.Length
	LegendSize    vg.Length
	WatermarkSize vg.Length
	ColorBarSize  vg.Length
}

// FigureStyle holds the overall figure geometry and background.
type FigureStyle struct {
	Width      vg.Length
	Height     vg.Length
	Background color.Color
}

// AxisStyle holds the axis line and label conventions.
type AxisStyle struct {
	LineWidth vg.Length
	TitlePad  vg.Length

	// LabelAtEnd places the x label at the right end of its axis and
	// the y label at the top, per house style.
	LabelAtEnd bool
}

// TickStyle holds the tick mark geometry.
type TickStyle struct {
	MajorLength vg.Length
	MajorWidth  vg.Length
	MinorLength vg.Length
	MinorWidth  vg.Length

	// Pad is the distance between the tick marks and their labels.
	Pad vg.Length

	Direction TickDirection

	// Mirror repeats the tick marks on the top and right edges.
	Mirror bool
}

// Theme is the complete house style: figure, axis, tick and font
// conventions plus one style bundle per chart element role.
type Theme struct {
	Name string

	Fonts  FontSet
	Figure FigureStyle
	Axes   AxisStyle
	Ticks  TickStyle

	HistStyle, PointStyle, ErrorBarStyle, LineStyle, WatermarkStyle AesMapping
}

// DefaultTheme is used wherever no explicit theme is given.
// It is the slide (sans serif) style, which needs no font file.
var DefaultTheme = *SansTheme()

func themeOf(t *Theme) *Theme {
	if t == nil {
		return &DefaultTheme
	}
	return t
}

// SansTheme returns the slide style: the sans serif face shipped with
// the plotting library, usable without any font resource. Fine for
// presentations, not for publications.
func SansTheme() *Theme {
	th := baseTheme()
	th.Name = "sans"
	th.Fonts.Typeface = "Liberation"
	th.Fonts.Variant = "Sans"
	th.Fonts.TitleSize = vg.Points(20)
	th.Fonts.LabelSize = vg.Points(16)
	th.Fonts.TickSize = vg.Points(14)
	th.Fonts.LegendSize = vg.Points(12)
	th.HistStyle["linewidth"] = "1.5"
	th.LineStyle["linewidth"] = "2"
	return th
}

// TimesTheme returns the publication style. It loads the Times New
// Roman face from the given TrueType file and registers it; a missing
// or unreadable file is an error, publication output must never fall
// back to a substitute typeface.
func TimesTheme(fontpath string) (*Theme, error) {
	face, err := LoadFontFace(fontpath, font.Font{
		Typeface: TimesTypeface,
		Variant:  "Serif",
	})
	if err != nil {
		return nil, err
	}
	RegisterFace(face)

	th := baseTheme()
	th.Name = "times"
	th.Fonts.Typeface = TimesTypeface
	th.Fonts.Variant = "Serif"
	th.Fonts.TitleSize = vg.Points(22)
	th.Fonts.LabelSize = vg.Points(26)
	th.Fonts.TickSize = vg.Points(24)
	th.Fonts.LegendSize = vg.Points(16)
	th.Fonts.ColorBarSize = vg.Points(24)
	th.HistStyle["linewidth"] = "2"
	th.LineStyle["linewidth"] = "2.5"
	return th, nil
}

// baseTheme carries everything the two styles agree on: data are black
// squares with error bars, MC is a blue step histogram, fits are red
// lines, inward mirrored ticks, white background, no legend box.
func baseTheme() *Theme {
	return &Theme{
		Fonts: FontSet{
			WatermarkSize: vg.Points(26),
			ColorBarSize:  vg.Points(16),
		},
		Figure: FigureStyle{
			Width:      8.5 * vg.Inch,
			Height:     6.5 * vg.Inch,
			Background: color.White,
		},
		Axes: AxisStyle{
			LineWidth:  vg.Points(1.6),
			TitlePad:   vg.Points(12),
			LabelAtEnd: true,
		},
		Ticks: TickStyle{
			MajorLength: vg.Points(6),
			MajorWidth:  vg.Points(1.6),
			MinorLength: vg.Points(3),
			MinorWidth:  vg.Points(1.6),
			Pad:         vg.Points(6),
			Direction:   TickIn,
			Mirror:      true,
		},
		HistStyle: AesMapping{
			"histtype": "step",
			"color":    "blue",
			"alpha":    "0.7",
		},
		PointStyle: AesMapping{
			"marker": "square",
			"color":  "black",
			"size":   "2.5",
		},
		ErrorBarStyle: AesMapping{
			"color":   "black",
			"capsize": "1.5",
		},
		LineStyle: AesMapping{
			"linestyle": "solid",
			"color":     "red",
		},
		WatermarkStyle: AesMapping{
			"color": "black",
			"size":  "26",
		},
	}
}

// font builds a font for one text role of the theme.
func (t *Theme) font(size vg.Length) font.Font {
	return font.Font{
		Typeface: t.Fonts.Typeface,
		Variant:  t.Fonts.Variant,
		Size:     size,
	}
}

// Apply fans the theme out to a plot: title, axis, tick and legend
// text, axis and tick geometry, background, and the frame with the
// inward mirrored tick marks.
func (t *Theme) Apply(p *plot.Plot) {
	p.BackgroundColor = t.Figure.Background

	p.Title.TextStyle.Font = t.font(t.Fonts.TitleSize)
	p.Title.Padding = t.Axes.TitlePad

	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.LineStyle.Width = t.Axes.LineWidth
		ax.Label.TextStyle.Font = t.font(t.Fonts.LabelSize)
		ax.Tick.Label.Font = t.font(t.Fonts.TickSize)

		switch t.Ticks.Direction {
		case TickOut:
			ax.Tick.Length = t.Ticks.MajorLength
			ax.Tick.LineStyle.Width = t.Ticks.MajorWidth
		case TickIn:
			// The native marks point outward, so they are blanked and
			// kept only as padding between axis and tick labels; the
			// Frame plotter draws the visible inward marks.
			ax.Tick.Length = t.Ticks.Pad
			ax.Tick.LineStyle.Width = 0
			ax.Tick.LineStyle.Color = color.Transparent
		}
	}

	if t.Axes.LabelAtEnd {
		p.X.Label.Position = draw.PosRight
		p.Y.Label.Position = draw.PosTop
	}

	p.Legend.TextStyle.Font = t.font(t.Fonts.LegendSize)
	p.Legend.Top = true

	if t.Ticks.Direction == TickIn || t.Ticks.Mirror {
		p.Add(t.Frame())
	}
}

// Frame returns the border-and-tick plotter configured for the theme.
func (t *Theme) Frame() *Frame {
	return &Frame{
		LineStyle: draw.LineStyle{
			Color: color.Black,
			Width: t.Axes.LineWidth,
		},
		TickStyle: draw.LineStyle{
			Color: color.Black,
			Width: t.Ticks.MajorWidth,
		},
		MajorLength: t.Ticks.MajorLength,
		MinorLength: t.Ticks.MinorLength,
		Primary:     t.Ticks.Direction == TickIn,
		Mirror:      t.Ticks.Mirror,
	}
}
