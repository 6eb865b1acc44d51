package charts

import (
	"math"

	"artreport/domain/art"
	"artreport/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// RenderTopBar draws the ranked bar chart of the top countries by observed
// value. Records are expected already sorted descending, as RankTop emits
// them.
func RenderTopBar(path, title string, records []art.MergedRecord, theme Theme) error {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = theme.TitleFontSize
	p.Y.Label.Text = "Children receiving ART"

	values := make(plotter.Values, len(records))
	labels := make([]string, len(records))
	for i, rec := range records {
		values[i] = rec.ObsValue
		labels[i] = rec.Country
	}

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return errors.RenderError("failed to build bar chart", err)
	}
	bars.Color = theme.BarColor
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight

	if err := p.Save(theme.Width, theme.Height, path); err != nil {
		return errors.RenderError("failed to save bar chart", err)
	}
	return nil
}
