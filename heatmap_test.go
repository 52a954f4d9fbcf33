package snostyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func unitGridFixture() UnitGrid {
	// (x+y)/2 on a small unit grid.
	const n = 4
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d.Set(i, j, (float64(j)/(n-1)+float64(i)/(n-1))/2)
		}
	}
	return UnitGrid{Matrix: d}
}

func TestUnitGrid(t *testing.T) {
	g := unitGridFixture()

	c, r := g.Dims()
	assert.Equal(t, 4, c)
	assert.Equal(t, 4, r)

	assert.Equal(t, 0.0, g.X(0))
	assert.Equal(t, 1.0, g.X(3))
	assert.Equal(t, 0.0, g.Y(0))
	assert.Equal(t, 1.0, g.Y(3))

	assert.Equal(t, 0.0, g.Z(0, 0))
	assert.Equal(t, 1.0, g.Z(3, 3))
	assert.InDelta(t, 0.5, g.Z(3, 0), 1e-12)
}

func TestHeatColorMapReversed(t *testing.T) {
	cm := HeatColorMap(0, 1)

	lo, err := cm.At(0)
	require.NoError(t, err)
	hi, err := cm.At(1)
	require.NoError(t, err)

	// Small values must be the bright end: reversed black body.
	assert.Greater(t, luminance(lo), luminance(hi))
}

func luminance(c interface{ RGBA() (r, g, b, a uint32) }) uint32 {
	r, g, b, _ := c.RGBA()
	return r + g + b
}

func TestNewHeatMap(t *testing.T) {
	h := NewHeatMap(unitGridFixture(), 32)
	require.NotNil(t, h)
	assert.Equal(t, 0.0, h.Min)
	assert.Equal(t, 1.0, h.Max)
}

func TestNewColorBarPlot(t *testing.T) {
	th := SansTheme()
	p := NewColorBarPlot(HeatColorMap(0, 1), "Color Map", th)
	require.NotNil(t, p)
	assert.Equal(t, "Color Map", p.Y.Label.Text)
}
