package pipeline

import (
	"math"

	"artreport/domain/art"
	"artreport/domain/report"

	"gonum.org/v1/gonum/stat"
)

// ScatterPairs drops every merged record missing either GDP per capita or
// the observed value and emits the surviving pairs together with an OLS fit
// obs_value = intercept + slope * gdp_per_capita. The fit is descriptive
// only; it draws the trend line and its standard-error band on the chart.
func ScatterPairs(records []art.MergedRecord) ([]report.ScatterPoint, report.ScatterFit) {
	points := make([]report.ScatterPoint, 0, len(records))
	for _, rec := range records {
		if !rec.HasObs || !rec.HasGDP {
			continue
		}
		points = append(points, report.ScatterPoint{
			Country:      rec.Country,
			Alpha3:       rec.Alpha3,
			GDPPerCapita: rec.GDPPerCapita,
			ObsValue:     rec.ObsValue,
		})
	}

	return points, fitOLS(points)
}

// fitOLS computes the least-squares line over the pairs. Fewer than three
// points leave the residual error undefined, so the fit degrades to its
// zero value with N recorded.
func fitOLS(points []report.ScatterPoint) report.ScatterFit {
	n := len(points)
	if n < 3 {
		return report.ScatterFit{N: n}
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, p := range points {
		xs[i] = p.GDPPerCapita
		ys[i] = p.ObsValue
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)

	// Residual standard error with n-2 degrees of freedom.
	var ssr float64
	for i := range xs {
		resid := ys[i] - (alpha + beta*xs[i])
		ssr += resid * resid
	}
	stderr := math.Sqrt(ssr / float64(n-2))

	return report.ScatterFit{
		Slope:     beta,
		Intercept: alpha,
		StdErr:    stderr,
		R2:        stat.RSquared(xs, ys, nil, alpha, beta),
		N:         n,
	}
}
