package reportdoc

import (
	"fmt"
	"testing"

	"artreport/domain/report"
	"artreport/internal/summary"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manifestFixture() *report.RunManifest {
	m := report.NewRunManifest()
	m.IndicatorRows = 24
	m.FilteredRows = 24
	m.DurationMs = 42
	return m
}

func allFigures() Figures {
	return Figures{
		Map:     "art_map.png",
		Bar:     "art_top_countries.png",
		Scatter: "art_vs_gdp.png",
		Yearly:  "art_yearly_total.png",
	}
}

func TestBuildMarkdown_FooterQuotesRunAndDuration(t *testing.T) {
	m := manifestFixture()

	md := BuildMarkdown("Title", summary.Stats{Countries: 12}, report.ScatterFit{}, allFigures(), m)

	assert.Contains(t, md, m.RunID)
	assert.Contains(t, md, "Completed in 42 ms")
	assert.NotContains(t, md, "Completed in 0 ms")
}

func TestBuildMarkdown_MapSectionSuppressedWithoutFigure(t *testing.T) {
	figures := allFigures()
	figures.Map = ""

	md := BuildMarkdown("Title", summary.Stats{}, report.ScatterFit{}, figures, manifestFixture())

	assert.NotContains(t, md, "art_map.png")
	assert.NotContains(t, md, "Coverage by country")
	// The other three sections still render.
	assert.Contains(t, md, "art_top_countries.png")
	assert.Contains(t, md, "art_vs_gdp.png")
	assert.Contains(t, md, "art_yearly_total.png")
}

func TestBuildMarkdown_FitQuotedOnlyWhenDefined(t *testing.T) {
	fit := report.ScatterFit{Slope: 0.5, Intercept: 100, R2: 0.8, N: 12}

	withFit := BuildMarkdown("Title", summary.Stats{}, fit, allFigures(), manifestFixture())
	assert.Contains(t, withFit, fmt.Sprintf("Across %d countries", fit.N))

	withoutFit := BuildMarkdown("Title", summary.Stats{}, report.ScatterFit{N: 2}, allFigures(), manifestFixture())
	assert.NotContains(t, withoutFit, "least-squares")
}

func TestRenderHTML_CompletePage(t *testing.T) {
	out := RenderHTML("# Heading\n\nbody text\n")

	html := string(out)
	require.NotEmpty(t, html)
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "body text")
}
