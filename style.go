package snostyle

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// AesMapping is a style bundle: a mapping from a visual attribute
// ("color", "linewidth", "marker", ...) to its value, all values kept
// as strings the way they appear in the collaboration templates.
//
// Bundles are read-only once built; merging always returns a fresh map.
type AesMapping map[string]string

func (m AesMapping) Copy() AesMapping {
	c := make(AesMapping, len(m))
	for a, v := range m {
		c[a] = v
	}
	return c
}

// Combine merges the ams into a copy of m. Later values in ams
// overwrite earlier ones or values in m.
func (m AesMapping) Combine(ams ...AesMapping) AesMapping {
	merged := m.Copy()
	for _, am := range ams {
		for a, v := range am {
			merged[a] = v
		}
	}
	return merged
}

// Attributes returns the attribute names set in m, sorted.
func (m AesMapping) Attributes() []string {
	attrs := make([]string, 0, len(m))
	for a := range m {
		attrs = append(attrs, a)
	}
	sort.Strings(attrs)
	return attrs
}

// MergeStyles merges the given bundles with decreasing priority:
// an attribute set in an earlier bundle wins over the same attribute
// in a later one. Empty values count as unset.
func MergeStyles(styles ...AesMapping) AesMapping {
	merged := make(AesMapping)
	for _, style := range styles {
		for a, v := range style {
			if v == "" {
				continue
			}
			if _, ok := merged[a]; !ok {
				merged[a] = v
			}
		}
	}
	return merged
}

func String2Float(s string, low, high float64) float64 {
	factor := 1.0
	if strings.HasSuffix(s, "%") {
		s = s[:len(s)-1]
		factor = 100
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return low
	}
	value /= factor

	if value < low {
		return low
	} else if value > high {
		return high
	}
	return value
}

// Set alpha to a in color c. TODO: handle case if c has alpha.
func SetAlpha(c color.Color, a float64) color.Color {
	r, g, b, _ := c.RGBA()
	r >>= 8
	g >>= 8
	b >>= 8
	a *= float64(0xff)
	return color.NRGBA{uint8(r), uint8(g), uint8(b), uint8(a)}
}

// -------------------------------------------------------------------------
// Markers

// String2Glyph maps a marker name to a gonum glyph. Both the
// matplotlib shorthands ("s", "o", ...) and full names are understood.
// Unknown markers come out as a hollow ring.
func String2Glyph(s string) draw.GlyphDrawer {
	switch s {
	case "s", "square":
		return draw.BoxGlyph{}
	case "o", "circle":
		return draw.CircleGlyph{}
	case "^", "triangle":
		return draw.PyramidGlyph{}
	case "+", "plus":
		return draw.PlusGlyph{}
	case "x", "cross":
		return draw.CrossGlyph{}
	case "square-open":
		return draw.SquareGlyph{}
	case "triangle-open":
		return draw.TriangleGlyph{}
	}
	return draw.RingGlyph{}
}

// -------------------------------------------------------------------------
// Lines

// String2Dashes maps a line style name to a gonum dash pattern.
// A nil pattern is a solid line.
func String2Dashes(s string) []vg.Length {
	switch s {
	case "--", "dashed":
		return []vg.Length{vg.Points(6), vg.Points(6)}
	case ":", "dotted":
		return []vg.Length{vg.Points(1), vg.Points(3)}
	case "-.", "dotdash":
		return []vg.Length{vg.Points(1), vg.Points(3), vg.Points(6), vg.Points(3)}
	case "longdash":
		return []vg.Length{vg.Points(12), vg.Points(12)}
	}
	return nil
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.NRGBA{
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
}

// String2Color resolves a #rrggbb or #rrggbbaa literal or one of the
// BuiltinColors names. An unknown name does not fail: it yields a
// translucent mauve (#aa66777f) that belongs to no house bundle, so a
// typo shows up in the figure instead of as a plausible colour.
func String2Color(s string) color.Color {
	if strings.HasPrefix(s, "#") && len(s) >= 7 {
		var r, g, b, a uint8
		fmt.Sscanf(s[1:3], "%2x", &r)
		fmt.Sscanf(s[3:5], "%2x", &g)
		fmt.Sscanf(s[5:7], "%2x", &b)
		a = 0xff
		if len(s) >= 9 {
			fmt.Sscanf(s[7:9], "%2x", &a)
		}
		return color.NRGBA{r, g, b, a}
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}

	return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
}

// styleColor resolves the "color" and "alpha" attributes of a merged
// bundle into a single color.
func styleColor(st AesMapping) color.Color {
	c := String2Color(st["color"])
	if a, ok := st["alpha"]; ok {
		return SetAlpha(c, String2Float(a, 0, 1))
	}
	return c
}
