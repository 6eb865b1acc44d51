package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"artreport/internal"
	"artreport/internal/config"
	"artreport/internal/pipeline"
	"artreport/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	indicator := filepath.Join(dir, "indicator.csv")
	metadata := filepath.Join(dir, "metadata.csv")
	geometry := filepath.Join(dir, "geometry.csv")
	require.NoError(t, testkit.WriteIndicatorCSV(indicator, config.DefaultIndicator, []int{2015, 2019}))
	require.NoError(t, testkit.WriteMetadataCSV(metadata))
	require.NoError(t, testkit.WriteGeometryCSV(geometry))

	return &config.Config{
		Inputs: config.Inputs{
			IndicatorFile: indicator,
			MetadataFile:  metadata,
			GeometryFile:  geometry,
		},
		Report: config.ReportConfig{
			OutputDir:      filepath.Join(dir, "out"),
			IndicatorLabel: config.DefaultIndicator,
			TopN:           10,
			Title:          "Pediatric Antiretroviral Treatment Access",
		},
	}
}

func TestReportService_RunProducesAllArtifacts(t *testing.T) {
	cfg := fixtureConfig(t)
	service := NewReportService(cfg, internal.NewLogger(internal.LogLevelError))

	manifest, err := service.Run(context.Background())
	require.NoError(t, err)

	for _, name := range []string{FigureMap, FigureBar, FigureScatter, FigureYearly, "report.html"} {
		_, err := os.Stat(filepath.Join(cfg.Report.OutputDir, name))
		assert.NoError(t, err, "missing artifact %s", name)
	}

	// 12 fixture countries, 2 years each.
	assert.Equal(t, 24, manifest.IndicatorRows)
	assert.Equal(t, 24, manifest.FilteredRows)
	assert.Equal(t, 0, manifest.JoinMisses)
	assert.Equal(t, 12, manifest.LatestRows)
	assert.Equal(t, 10, manifest.RankedRows)
	assert.Equal(t, 2, manifest.YearsCovered)
	assert.Equal(t, 0, manifest.ResolutionMisses)
	assert.NotEmpty(t, manifest.RunID)

	// The footer quotes the duration measured by this run, not the
	// manifest's zero value.
	html, err := os.ReadFile(filepath.Join(cfg.Report.OutputDir, "report.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), fmt.Sprintf("Completed in %d ms", manifest.DurationMs))
}

func TestReportService_NoGeometrySkipsMap(t *testing.T) {
	cfg := fixtureConfig(t)
	cfg.Inputs.GeometryFile = ""
	service := NewReportService(cfg, internal.NewLogger(internal.LogLevelError))

	manifest, err := service.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, manifest.GeometryRows)

	_, statErr := os.Stat(filepath.Join(cfg.Report.OutputDir, FigureMap))
	assert.True(t, os.IsNotExist(statErr), "map rendered without geometry input")

	html, err := os.ReadFile(filepath.Join(cfg.Report.OutputDir, "report.html"))
	require.NoError(t, err)
	assert.NotContains(t, string(html), FigureMap, "document references a figure that was never rendered")
}

func TestReportService_MissingInputIsFatal(t *testing.T) {
	cfg := fixtureConfig(t)
	cfg.Inputs.IndicatorFile = filepath.Join(t.TempDir(), "absent.csv")
	service := NewReportService(cfg, internal.NewLogger(internal.LogLevelError))

	_, err := service.Run(context.Background())
	require.Error(t, err)

	_, statErr := os.Stat(cfg.Report.OutputDir)
	assert.True(t, os.IsNotExist(statErr), "output dir created despite fatal load error")
}

func TestDerive_Deterministic(t *testing.T) {
	indicators := testkit.Indicators(config.DefaultIndicator, []int{2010, 2015, 2019})
	merged := pipeline.LeftJoin(indicators, testkit.Metadata())

	first, err := Derive(context.Background(), merged, indicators, 10)
	require.NoError(t, err)
	second, err := Derive(context.Background(), merged, indicators, 10)
	require.NoError(t, err)

	assert.Equal(t, first.Latest, second.Latest)
	assert.Equal(t, first.Ranking, second.Ranking)
	assert.Equal(t, first.Points, second.Points)
	assert.Equal(t, first.Fit, second.Fit)
	assert.Equal(t, first.Yearly, second.Yearly)
}

func TestDerive_ViewsAgree(t *testing.T) {
	indicators := testkit.Indicators(config.DefaultIndicator, []int{2015, 2019})
	merged := pipeline.LeftJoin(indicators, testkit.Metadata())

	views, err := Derive(context.Background(), merged, indicators, 10)
	require.NoError(t, err)

	// Every ranked row appears in the latest view.
	latestKeys := make(map[string]bool, len(views.Latest))
	for _, rec := range views.Latest {
		latestKeys[rec.Key()] = true
	}
	for _, rec := range views.Ranking {
		assert.True(t, latestKeys[rec.Key()], "ranked row %s not in latest view", rec.Country)
	}

	// Scatter pairs never exceed the merged input.
	assert.LessOrEqual(t, len(views.Points), len(merged))
}
