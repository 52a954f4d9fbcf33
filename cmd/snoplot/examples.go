package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	snostyle "github.com/claradima/plotting-stuff"
)

type exampleOpts struct {
	style string
	font  string
	out   string
	rc    string
}

func examplesCmd() *cobra.Command {
	var opts exampleOpts
	cmd := &cobra.Command{
		Use:   "examples",
		Short: "Render the worked example figures as PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExamples(opts)
		},
	}
	cmd.Flags().StringVar(&opts.style, "style", "sans", `figure style: "sans", "times" or "both"`)
	cmd.Flags().StringVar(&opts.font, "font", "Times_New_Roman_Normal.ttf", "TrueType file for the times style")
	cmd.Flags().StringVar(&opts.out, "out", ".", "output directory")
	cmd.Flags().StringVar(&opts.rc, "rc", "", "optional theme override file (YAML)")
	return cmd
}

func runExamples(opts exampleOpts) error {
	var themes []*snostyle.Theme
	switch opts.style {
	case "sans":
		themes = append(themes, snostyle.SansTheme())
	case "times":
		th, err := snostyle.TimesTheme(opts.font)
		if err != nil {
			return err
		}
		themes = append(themes, th)
	case "both":
		th, err := snostyle.TimesTheme(opts.font)
		if err != nil {
			return err
		}
		themes = append(themes, snostyle.SansTheme(), th)
	default:
		return fmt.Errorf("unknown style %q", opts.style)
	}

	if opts.rc != "" {
		rc, err := snostyle.LoadRC(opts.rc)
		if err != nil {
			return err
		}
		for _, th := range themes {
			rc.Apply(th)
		}
	}

	for _, th := range themes {
		for _, render := range []func(*snostyle.Theme, string) (string, error){
			example1D,
			example2D,
		} {
			name, err := render(th, opts.out)
			if err != nil {
				return err
			}
			slog.Info("wrote figure", "path", name, "style", th.Name)
		}
	}
	return nil
}

// example1D is the composite figure: MC histogram, fit line, data
// points with error bars, legend and watermark, all on one plot.
func example1D(th *snostyle.Theme, out string) (string, error) {
	x := []float64{1.1, 2.5, 3.2, 4, 4.5, 6.7, 7, 8, 9, 10}
	y := []float64{2, 4, 6, 8, 10, 9, 6.6, 7, 8.5, 3}
	y2 := []float64{1.3, 3.1, 5, 6, 9, 8, 6.5, 6, 7, 3.5}

	p := plot.New()
	th.Apply(p)
	p.X.Label.Text = "R^3 / R_AV^3"
	p.Y.Label.Text = "Events"
	p.X.Tick.Marker = snostyle.MultipleTicker{Delta: 1, Minor: 2}
	p.Y.Tick.Marker = snostyle.MultipleTicker{Delta: 1, Minor: 2}

	hist, err := snostyle.NewHistogram(plotter.Values(y), 10, th, nil)
	if err != nil {
		return "", err
	}
	line, err := snostyle.NewLine(xyPoints(x, y2), th, nil)
	if err != nil {
		return "", err
	}
	data := snostyle.NewYErrorPoints(x, y, 0.5)
	scatter, err := snostyle.NewScatter(data, th, nil)
	if err != nil {
		return "", err
	}
	ebars, err := snostyle.NewYErrorBars(data, th, nil)
	if err != nil {
		return "", err
	}

	p.Add(hist, line, scatter, ebars)
	p.Add(snostyle.NewWatermark(5.8, 10, th))
	p.Legend.Add("Histogram", hist)
	p.Legend.Add("Line Plot", line)
	p.Legend.Add("Scatter", scatter)
	p.Legend.Add("Errorbar", ebars)

	name := filepath.Join(out, "example1D_"+suffix(th)+".pdf")
	return name, snostyle.SavePDF(p, th.Figure.Width, th.Figure.Height, name)
}

// example2D is the color-map figure with its colorbar.
func example2D(th *snostyle.Theme, out string) (string, error) {
	const n = 30
	xs := make([]float64, n)
	floats.Span(xs, 0, 1)

	data := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data.Set(i, j, (xs[j]+xs[i])/2)
		}
	}

	p := plot.New()
	th.Apply(p)
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	p.Add(snostyle.NewHeatMap(snostyle.UnitGrid{Matrix: data}, 255))

	wm := snostyle.NewWatermark(0.08, 0.5, th)
	wm.NDC = true
	wm.TextStyle.Color = snostyle.String2Color("white")
	p.Add(wm)

	bar := snostyle.NewColorBarPlot(snostyle.HeatColorMap(0, 1), "Color Map", th)

	name := filepath.Join(out, "example2D_"+suffix(th)+".pdf")
	return name, snostyle.SaveSideBySide(p, bar, th.Figure.Width, th.Figure.Height, name)
}

func xyPoints(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

func suffix(th *snostyle.Theme) string {
	switch th.Name {
	case "times":
		return "Times"
	default:
		return "Sans"
	}
}
