package charts

import (
	"strconv"

	"artreport/domain/report"
	"artreport/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// RenderYearly draws the yearly global total as a line chart.
func RenderYearly(path, title string, totals []report.YearlyTotal, theme Theme) error {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = theme.TitleFontSize
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Children receiving ART, all countries"
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(totals))
	for i, yt := range totals {
		xys[i].X = float64(yt.Year)
		xys[i].Y = yt.Total
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return errors.RenderError("failed to build yearly line", err)
	}
	line.Color = theme.LineColor
	line.Width = vg.Points(2)
	points.Color = theme.LineColor
	points.Radius = vg.Points(2.5)

	p.Add(line, points)
	p.X.Tick.Marker = yearTicks{}

	if err := p.Save(theme.Width, theme.Height, path); err != nil {
		return errors.RenderError("failed to save yearly chart", err)
	}
	return nil
}

// yearTicks labels whole years only.
type yearTicks struct{}

func (yearTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for y := int(min); y <= int(max)+1; y++ {
		v := float64(y)
		if v < min || v > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.Itoa(y)})
	}
	return ticks
}
