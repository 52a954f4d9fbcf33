package snostyle

import (
	"bytes"
	"fmt"
	"os"

	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

// RC holds optional theme overrides read from a YAML file, the analog
// of a matplotlibrc. Only set fields are applied; lengths are in
// printer's points, figure dimensions in inches.
type RC struct {
	FigureWidth  *float64 `yaml:"figure_width"`
	FigureHeight *float64 `yaml:"figure_height"`

	AxesLineWidth *float64 `yaml:"axes_linewidth"`
	TitlePad      *float64 `yaml:"title_pad"`

	TickMajorSize  *float64 `yaml:"tick_major_size"`
	TickMajorWidth *float64 `yaml:"tick_major_width"`
	TickMinorSize  *float64 `yaml:"tick_minor_size"`
	TickMinorWidth *float64 `yaml:"tick_minor_width"`
	TickPad        *float64 `yaml:"tick_pad"`

	TitleSize     *float64 `yaml:"title_size"`
	LabelSize     *float64 `yaml:"label_size"`
	TickLabelSize *float64 `yaml:"tick_label_size"`
	LegendSize    *float64 `yaml:"legend_size"`
	WatermarkSize *float64 `yaml:"watermark_size"`

	WatermarkColor *string `yaml:"watermark_color"`
}

// LoadRC reads theme overrides from path. Unknown keys are an error,
// a typo in an rc file must not silently change nothing.
func LoadRC(path string) (*RC, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rc file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	rc := new(RC)
	if err := dec.Decode(rc); err != nil {
		return nil, fmt.Errorf("parsing rc file %s: %w", path, err)
	}
	return rc, nil
}

// Apply copies the set overrides onto t.
func (rc *RC) Apply(t *Theme) {
	setLen := func(dst *vg.Length, src *float64, unit vg.Length) {
		if src != nil {
			*dst = vg.Length(*src) * unit
		}
	}

	setLen(&t.Figure.Width, rc.FigureWidth, vg.Inch)
	setLen(&t.Figure.Height, rc.FigureHeight, vg.Inch)

	setLen(&t.Axes.LineWidth, rc.AxesLineWidth, vg.Points(1))
	setLen(&t.Axes.TitlePad, rc.TitlePad, vg.Points(1))

	setLen(&t.Ticks.MajorLength, rc.TickMajorSize, vg.Points(1))
	setLen(&t.Ticks.MajorWidth, rc.TickMajorWidth, vg.Points(1))
	setLen(&t.Ticks.MinorLength, rc.TickMinorSize, vg.Points(1))
	setLen(&t.Ticks.MinorWidth, rc.TickMinorWidth, vg.Points(1))
	setLen(&t.Ticks.Pad, rc.TickPad, vg.Points(1))

	setLen(&t.Fonts.TitleSize, rc.TitleSize, vg.Points(1))
	setLen(&t.Fonts.LabelSize, rc.LabelSize, vg.Points(1))
	setLen(&t.Fonts.TickSize, rc.TickLabelSize, vg.Points(1))
	setLen(&t.Fonts.LegendSize, rc.LegendSize, vg.Points(1))
	setLen(&t.Fonts.WatermarkSize, rc.WatermarkSize, vg.Points(1))

	if rc.WatermarkColor != nil {
		t.WatermarkStyle = t.WatermarkStyle.Combine(AesMapping{"color": *rc.WatermarkColor})
	}
	if rc.WatermarkSize != nil {
		t.WatermarkStyle = t.WatermarkStyle.Combine(AesMapping{"size": fmt.Sprintf("%g", *rc.WatermarkSize)})
	}
}
