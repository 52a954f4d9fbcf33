package snostyle

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

// SavePDF writes p as a vector PDF of the given size. The house style
// mandates PDF output, so any other extension is rejected.
func SavePDF(p *plot.Plot, w, h vg.Length, name string) error {
	if err := checkPDFName(name); err != nil {
		return err
	}
	return p.Save(w, h, name)
}

// SaveAligned writes a row-major arrangement of plots to one PDF
// canvas, tiled by t. The data areas of all plots are aligned, so
// axes in one row share their vertical extent. Nil entries leave
// their tile empty.
func SaveAligned(plots [][]*plot.Plot, t draw.Tiles, w, h vg.Length, name string) error {
	if err := checkPDFName(name); err != nil {
		return err
	}

	c := vgpdf.New(w, h)
	canvases := plot.Align(plots, t, draw.New(c))
	for i, row := range plots {
		for j, p := range row {
			if p != nil {
				p.Draw(canvases[i][j])
			}
		}
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SaveSideBySide writes fig with bar to its right, sharing one PDF
// canvas with their data areas aligned, so the colorbar is flush with
// the color map.
func SaveSideBySide(fig, bar *plot.Plot, w, h vg.Length, name string) error {
	tiles := draw.Tiles{Rows: 1, Cols: 2, PadX: vg.Millimeter}
	return SaveAligned([][]*plot.Plot{{fig, bar}}, tiles, w, h, name)
}

func checkPDFName(name string) error {
	if filepath.Ext(name) != ".pdf" {
		return fmt.Errorf("figure %s: output must be a PDF", name)
	}
	return nil
}
