package charts

import (
	"artreport/domain/report"
	"artreport/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// RenderScatter draws the GDP-versus-ART scatter with the OLS trend line
// and a band one residual standard error either side of it.
func RenderScatter(path, title string, points []report.ScatterPoint, fit report.ScatterFit, theme Theme) error {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = theme.TitleFontSize
	p.X.Label.Text = "GDP per capita (constant 2015 US$)"
	p.Y.Label.Text = "Children receiving ART"
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = pt.GDPPerCapita
		xys[i].Y = pt.ObsValue
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return errors.RenderError("failed to build scatter", err)
	}
	scatter.GlyphStyle.Color = theme.PointColor
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter)

	// Trend line plus SE band, only when the fit is defined.
	if fit.N >= 3 {
		minX, maxX := xys[0].X, xys[0].X
		for _, xy := range xys {
			if xy.X < minX {
				minX = xy.X
			}
			if xy.X > maxX {
				maxX = xy.X
			}
		}

		line := func(offset float64) plotter.XYs {
			return plotter.XYs{
				{X: minX, Y: fit.Predict(minX) + offset},
				{X: maxX, Y: fit.Predict(maxX) + offset},
			}
		}

		trend, err := plotter.NewLine(line(0))
		if err != nil {
			return errors.RenderError("failed to build trend line", err)
		}
		trend.Color = theme.FitColor
		trend.Width = vg.Points(2)
		p.Add(trend)

		for _, offset := range []float64{fit.StdErr, -fit.StdErr} {
			band, err := plotter.NewLine(line(offset))
			if err != nil {
				return errors.RenderError("failed to build band line", err)
			}
			band.Color = theme.BandColor
			band.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
			p.Add(band)
		}
	}

	if err := p.Save(theme.Width, theme.Height, path); err != nil {
		return errors.RenderError("failed to save scatter", err)
	}
	return nil
}
