package snostyle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot/font"
)

// TimesTypeface is the cache name of the publication font.
const TimesTypeface font.Typeface = "TimesNewRoman"

// ErrFontNotFound reports a missing font resource. Publication plots
// must never be rendered with a substitute typeface, so callers are
// expected to fail, not to fall back.
var ErrFontNotFound = errors.New("font resource not found")

// LoadFontFace reads and parses a TrueType font file and binds it to
// the given font description.
func LoadFontFace(path string, fnt font.Font) (font.Face, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return font.Face{}, fmt.Errorf("%w: %s", ErrFontNotFound, path)
		}
		return font.Face{}, fmt.Errorf("reading font resource %s: %w", path, err)
	}

	otf, err := opentype.Parse(raw)
	if err != nil {
		return font.Face{}, fmt.Errorf("parsing font resource %s: %w", path, err)
	}

	return font.Face{Font: fnt, Face: otf}, nil
}

// RegisterFace makes a loaded face available to all plots rendered in
// this process.
func RegisterFace(face font.Face) {
	font.DefaultCache.Add([]font.Face{face})
}
