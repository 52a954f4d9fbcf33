package snostyle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func writeRC(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snoplotrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadRCApply(t *testing.T) {
	rc, err := LoadRC(writeRC(t, `
figure_width: 18
figure_height: 10
tick_pad: 12
label_size: 32
watermark_color: white
`))
	require.NoError(t, err)

	th := SansTheme()
	rc.Apply(th)

	assert.Equal(t, 18*vg.Inch, th.Figure.Width)
	assert.Equal(t, 10*vg.Inch, th.Figure.Height)
	assert.Equal(t, vg.Points(12), th.Ticks.Pad)
	assert.Equal(t, vg.Points(32), th.Fonts.LabelSize)
	assert.Equal(t, "white", th.WatermarkStyle["color"])

	// Untouched fields keep the theme values.
	assert.Equal(t, vg.Points(1.6), th.Axes.LineWidth)
	assert.Equal(t, vg.Points(6), th.Ticks.MajorLength)
}

func TestLoadRCUnknownKey(t *testing.T) {
	_, err := LoadRC(writeRC(t, "no_such_knob: 3\n"))
	require.Error(t, err, "a typo must not silently change nothing")
}

func TestLoadRCMissing(t *testing.T) {
	_, err := LoadRC(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestRCWatermarkSize(t *testing.T) {
	rc, err := LoadRC(writeRC(t, "watermark_size: 20\n"))
	require.NoError(t, err)

	th := SansTheme()
	rc.Apply(th)

	assert.Equal(t, vg.Points(20), th.Fonts.WatermarkSize)
	w := NewWatermark(0, 0, th)
	assert.Equal(t, vg.Points(20), w.TextStyle.Font.Size)
}
