package snostyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func TestPreliminaryTextVerbatim(t *testing.T) {
	// The annotation wording is fixed by the collaboration.
	assert.Equal(t, "SNO+ Preliminary", PreliminaryText)
}

func TestNewWatermark(t *testing.T) {
	th := SansTheme()
	w := NewWatermark(5.8, 10, th)

	assert.Equal(t, 5.8, w.X)
	assert.Equal(t, 10.0, w.Y)
	assert.False(t, w.NDC)
	assert.Empty(t, w.Text, "empty text renders PreliminaryText")
	assert.Equal(t, String2Color("black"), w.TextStyle.Color)
	assert.Equal(t, vg.Points(26), w.TextStyle.Font.Size)
}

func TestWatermarkColorOverride(t *testing.T) {
	th := SansTheme()
	th.WatermarkStyle = th.WatermarkStyle.Combine(AesMapping{"color": "white"})

	w := NewWatermark(0.5, 0.5, th)
	assert.Equal(t, String2Color("white"), w.TextStyle.Color)
}

// TestRenderComposite draws the full 1D composite, watermark and
// frame included, onto a raster canvas. It must not panic and must
// leave the watermark text as given.
func TestRenderComposite(t *testing.T) {
	th := SansTheme()
	p := plot.New()
	th.Apply(p)
	p.X.Label.Text = "R^3 / R_AV^3"
	p.Y.Label.Text = "Events"
	p.X.Tick.Marker = MultipleTicker{Delta: 1, Minor: 2}

	hist, err := NewHistogram(plotter.Values{2, 4, 6, 8, 10, 9, 6.6, 7, 8.5, 3}, 10, th, nil)
	require.NoError(t, err)
	line, err := NewLine(testXYs, th, nil)
	require.NoError(t, err)
	data := NewYErrorPoints([]float64{1, 2, 3}, []float64{2, 4, 3}, 0.5)
	scatter, err := NewScatter(data, th, nil)
	require.NoError(t, err)
	ebars, err := NewYErrorBars(data, th, nil)
	require.NoError(t, err)

	wm := NewWatermark(1.5, 9, th)
	p.Add(hist, line, scatter, ebars, wm)
	p.Legend.Add("Histogram", hist)
	p.Legend.Add("Data", scatter, ebars)

	c := vgimg.New(vg.Points(425), vg.Points(325))
	p.Draw(draw.New(c))

	assert.Empty(t, wm.Text)
}

func TestWatermarkNDC(t *testing.T) {
	th := SansTheme()
	p := plot.New()
	th.Apply(p)
	p.Add(mustLine(t, th))

	wm := NewWatermark(0.1, 0.5, th)
	wm.NDC = true
	wm.TextStyle.Color = String2Color("white")
	p.Add(wm)

	c := vgimg.New(vg.Points(425), vg.Points(325))
	p.Draw(draw.New(c))
}

func mustLine(t *testing.T, th *Theme) *plotter.Line {
	t.Helper()
	l, err := NewLine(testXYs, th, nil)
	require.NoError(t, err)
	return l
}
