// Package charts renders the four report figures as PNG files with
// gonum/plot. All styling flows through an explicit Theme value passed into
// each renderer; the package keeps no ambient state.
package charts

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Theme holds every styling decision the renderers make.
type Theme struct {
	TitleFontSize vg.Length
	Width         vg.Length
	Height        vg.Length

	BarColor   color.RGBA
	LineColor  color.RGBA
	PointColor color.RGBA
	FitColor   color.RGBA
	BandColor  color.RGBA

	// Scale is the choropleth fill ramp, low to high.
	Scale []color.RGBA
	// MissingFill is used for regions with no resolvable code or no value.
	MissingFill color.RGBA
}

// DefaultTheme returns the report's standard styling.
func DefaultTheme() Theme {
	return Theme{
		TitleFontSize: vg.Points(14),
		Width:         10 * vg.Inch,
		Height:        6 * vg.Inch,
		BarColor:      color.RGBA{R: 70, G: 130, B: 180, A: 255},
		LineColor:     color.RGBA{R: 0, G: 100, B: 0, A: 255},
		PointColor:    color.RGBA{R: 178, G: 34, B: 34, A: 255},
		FitColor:      color.RGBA{R: 25, G: 25, B: 112, A: 255},
		BandColor:     color.RGBA{R: 25, G: 25, B: 112, A: 60},
		Scale: []color.RGBA{
			{R: 237, G: 248, B: 233, A: 255},
			{R: 186, G: 228, B: 179, A: 255},
			{R: 116, G: 196, B: 118, A: 255},
			{R: 49, G: 163, B: 84, A: 255},
			{R: 0, G: 109, B: 44, A: 255},
		},
		MissingFill: color.RGBA{R: 211, G: 211, B: 211, A: 255},
	}
}
