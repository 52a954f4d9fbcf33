// Package snostyle applies the SNO+ collaboration plot style to
// gonum/plot figures.
//
//
// House Rules
//
// Every figure that shows SNO+ data is marked with "SNO+ Preliminary".
// Data are black points with error bars (where a single data series
// is shown), MC is a blue step histogram (where a single model is
// shown) and any fit function not based on MC is a red line (when a
// single fit is shown). Legends have no box. Figures are always saved
// as PDF. For publications the mandated typeface is Times New Roman,
// loaded from a TrueType file; slides may use the sans serif default.
//
//
// Style Bundles
//
// The aesthetics of each chart element role live in a style bundle,
// an AesMapping from attribute name to value:
//      snostyle.AesMapping{
//          "histtype":  "step",
//          "color":     "blue",
//          "alpha":     "0.7",
//          "linewidth": "2",
//      }
// The element constructors (NewHistogram, NewScatter, NewLine,
// NewYErrorBars) merge a per-call bundle over the theme's bundle over
// the defaults, earlier values winning, and forward the result to the
// plotting library.
//
//
// Themes
//
// SansTheme and TimesTheme return the slide and the publication
// style. Theme.Apply fans a theme out to a plot: fonts for title,
// axis labels, tick labels and legend, axis and tick geometry, white
// background, axis labels at the ends of their axes, and the frame
// with inward tick marks mirrored on all four sides.
//
// Plots that compare several series should use distinct,
// colourblind-friendly colours and markers via per-call overrides.
package snostyle
