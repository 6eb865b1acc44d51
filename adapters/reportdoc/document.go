// Package reportdoc assembles the report narrative as markdown and renders
// it to a standalone HTML document embedding the chart images.
package reportdoc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"artreport/domain/report"
	"artreport/internal/errors"
	"artreport/internal/summary"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Figures names the chart files referenced by the document, relative to the
// output directory. An empty Map means no choropleth was rendered and its
// section is left out.
type Figures struct {
	Map     string
	Bar     string
	Scatter string
	Yearly  string
}

// BuildMarkdown writes the narrative for one run.
func BuildMarkdown(title string, stats summary.Stats, fit report.ScatterFit, figures Figures, manifest *report.RunManifest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title)

	fmt.Fprintf(&b, "In the most recent reporting year per country, %d countries reported "+
		"an estimated %.0f children aged 0-14 receiving antiretroviral treatment "+
		"(mean %.0f, median %.0f per country). %s reported the largest number.\n\n",
		stats.Countries, stats.Total, stats.Mean, stats.Median, stats.TopCountry)

	if figures.Map != "" {
		b.WriteString("## Coverage by country\n\n")
		fmt.Fprintf(&b, "![Choropleth of children receiving ART](%s)\n\n", figures.Map)
	}

	b.WriteString("## Leading countries\n\n")
	fmt.Fprintf(&b, "![Top countries by children receiving ART](%s)\n\n", figures.Bar)

	b.WriteString("## Treatment access and national income\n\n")
	if fit.N >= 3 {
		fmt.Fprintf(&b, "Across %d countries with both figures available, a least-squares "+
			"fit gives obs = %.2f + %.4f x GDP per capita (R² = %.3f). The fit is shown "+
			"for visual trend only.\n\n", fit.N, fit.Intercept, fit.Slope, fit.R2)
	}
	fmt.Fprintf(&b, "![ART versus GDP per capita](%s)\n\n", figures.Scatter)

	b.WriteString("## Trend over time\n\n")
	fmt.Fprintf(&b, "![Yearly total of children receiving ART](%s)\n\n", figures.Yearly)

	fmt.Fprintf(&b, "---\n\nRun `%s`: %d indicator rows in, %d matched the target "+
		"indicator, %d join misses, %d unresolved region names. Completed in %d ms.\n",
		manifest.RunID, manifest.IndicatorRows, manifest.FilteredRows,
		manifest.JoinMisses, manifest.ResolutionMisses, manifest.DurationMs)

	return b.String()
}

// RenderHTML converts the markdown narrative to a complete HTML page.
func RenderHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse([]byte(md))

	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.CompletePage,
	})
	return markdown.Render(doc, renderer)
}

// WriteDocument renders the narrative and writes it into the output
// directory as report.html.
func WriteDocument(outputDir, md string) (string, error) {
	path := filepath.Join(outputDir, "report.html")
	if err := os.WriteFile(path, RenderHTML(md), 0o644); err != nil {
		return "", errors.RenderError("failed to write report document", err)
	}
	return path, nil
}
