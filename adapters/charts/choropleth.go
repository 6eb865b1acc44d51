package charts

import (
	"image/color"
	"sort"

	"artreport/domain/art"
	"artreport/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// RenderChoropleth draws the world map, filling each region's polygons by
// its latest observed value. Regions whose name did not resolve to a code,
// or whose code has no value, get the neutral missing fill rather than
// being dropped.
func RenderChoropleth(path, title string, geometry []art.GeometryRecord, valueByAlpha3 map[string]float64, theme Theme) error {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = theme.TitleFontSize
	p.HideAxes()

	lo, hi := valueRange(valueByAlpha3)

	for _, group := range polygonGroups(geometry) {
		xys := make(plotter.XYs, len(group))
		for i, rec := range group {
			xys[i].X = rec.Long
			xys[i].Y = rec.Lat
		}

		poly, err := plotter.NewPolygon(xys)
		if err != nil {
			return errors.RenderError("failed to build map polygon", err)
		}

		fill := theme.MissingFill
		if code := group[0].Alpha3; code != "" {
			if value, ok := valueByAlpha3[code]; ok {
				fill = binColor(value, lo, hi, theme.Scale)
			}
		}
		poly.Color = fill
		poly.LineStyle.Color = color.RGBA{R: 255, G: 255, B: 255, A: 255}

		p.Add(poly)
	}

	if err := p.Save(theme.Width, theme.Height, path); err != nil {
		return errors.RenderError("failed to save choropleth", err)
	}
	return nil
}

// polygonGroups splits the geometry into its polygons, each ordered by the
// source's vertex order. Group order is ascending for determinism.
func polygonGroups(geometry []art.GeometryRecord) [][]art.GeometryRecord {
	byGroup := make(map[int][]art.GeometryRecord)
	for _, rec := range geometry {
		byGroup[rec.Group] = append(byGroup[rec.Group], rec)
	}

	ids := make([]int, 0, len(byGroup))
	for id := range byGroup {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	groups := make([][]art.GeometryRecord, 0, len(ids))
	for _, id := range ids {
		group := byGroup[id]
		sort.SliceStable(group, func(i, j int) bool { return group[i].Order < group[j].Order })
		groups = append(groups, group)
	}
	return groups
}

func valueRange(values map[string]float64) (lo, hi float64) {
	first := true
	for _, v := range values {
		if first {
			lo, hi = v, v
			first = false
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// binColor maps a value onto the fill ramp with equal-width bins.
func binColor(value, lo, hi float64, scale []color.RGBA) color.RGBA {
	if len(scale) == 0 {
		return color.RGBA{}
	}
	if hi <= lo {
		return scale[len(scale)-1]
	}
	bin := int(float64(len(scale)) * (value - lo) / (hi - lo))
	if bin >= len(scale) {
		bin = len(scale) - 1
	}
	if bin < 0 {
		bin = 0
	}
	return scale[bin]
}
