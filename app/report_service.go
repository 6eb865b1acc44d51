// Package app wires the loaders, pipeline, and renderers into the one-shot
// report run.
package app

import (
	"context"
	"os"
	"path/filepath"

	"artreport/adapters/charts"
	"artreport/adapters/reportdoc"
	"artreport/adapters/tabular"
	"artreport/domain/art"
	"artreport/domain/report"
	"artreport/internal"
	"artreport/internal/config"
	"artreport/internal/errors"
	"artreport/internal/geo"
	"artreport/internal/pipeline"
	"artreport/internal/summary"

	"golang.org/x/sync/errgroup"
)

// Figure file names inside the output directory.
const (
	FigureMap     = "art_map.png"
	FigureBar     = "art_top_countries.png"
	FigureScatter = "art_vs_gdp.png"
	FigureYearly  = "art_yearly_total.png"
)

// ReportService runs the full pipeline: load, filter and join, derive the
// four views, render charts and the report document.
type ReportService struct {
	cfg      *config.Config
	log      *internal.Logger
	resolver *geo.Resolver
	theme    charts.Theme
}

// NewReportService creates a service with the default chart theme.
func NewReportService(cfg *config.Config, log *internal.Logger) *ReportService {
	return &ReportService{
		cfg:      cfg,
		log:      log,
		resolver: geo.NewResolver(),
		theme:    charts.DefaultTheme(),
	}
}

// Run executes one report run. The returned manifest is populated even on
// partial progress; the error, when set, is fatal and nothing was rendered
// past the failing step.
func (s *ReportService) Run(ctx context.Context) (*report.RunManifest, error) {
	manifest := report.NewRunManifest()

	indicators, metadata, geometry, err := s.load()
	if err != nil {
		return manifest, err
	}
	manifest.IndicatorRows = len(indicators)
	manifest.MetadataRows = len(metadata)
	manifest.GeometryRows = len(geometry)

	filtered := pipeline.FilterIndicator(indicators, s.cfg.Report.IndicatorLabel)
	manifest.FilteredRows = len(filtered)
	s.log.Info("filtered %d of %d indicator rows matching target label", len(filtered), len(indicators))

	merged := pipeline.LeftJoin(filtered, metadata)
	manifest.JoinMisses = pipeline.CountJoinMisses(merged)
	if manifest.JoinMisses > 0 {
		s.log.Warn("%d indicator rows have no metadata match", manifest.JoinMisses)
	}

	views, err := Derive(ctx, merged, filtered, s.cfg.Report.TopN)
	if err != nil {
		return manifest, err
	}
	manifest.LatestRows = len(views.Latest)
	manifest.RankedRows = len(views.Ranking)
	manifest.ScatterPairs = len(views.Points)
	manifest.YearsCovered = len(views.Yearly)

	s.resolveGeometry(geometry)
	manifest.ResolutionMisses = s.resolver.Misses()
	for name, count := range s.resolver.MissedNames() {
		s.log.Debug("unresolved region name %q (%d rows)", name, count)
	}

	if err := s.render(views, geometry, manifest); err != nil {
		return manifest, err
	}

	s.log.Info("run %s completed in %dms", manifest.RunID, manifest.DurationMs)
	return manifest, nil
}

// load reads and parses the source tables. The geometry table is optional;
// without it the choropleth is skipped.
func (s *ReportService) load() ([]art.IndicatorRecord, []art.MetadataRecord, []art.GeometryRecord, error) {
	indicatorTable, err := tabular.NewDataReader(s.cfg.Inputs.IndicatorFile).Read()
	if err != nil {
		return nil, nil, nil, err
	}
	indicators, err := tabular.ParseIndicators(indicatorTable)
	if err != nil {
		return nil, nil, nil, err
	}

	metadataTable, err := tabular.NewDataReader(s.cfg.Inputs.MetadataFile).Read()
	if err != nil {
		return nil, nil, nil, err
	}
	metadata, err := tabular.ParseMetadata(metadataTable)
	if err != nil {
		return nil, nil, nil, err
	}

	var geometry []art.GeometryRecord
	if s.cfg.Inputs.GeometryFile != "" {
		geometryTable, err := tabular.NewDataReader(s.cfg.Inputs.GeometryFile).Read()
		if err != nil {
			return nil, nil, nil, err
		}
		geometry, err = tabular.ParseGeometry(geometryTable)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	return indicators, metadata, geometry, nil
}

// Derive computes the four views. The aggregators are independent pure
// functions of the same inputs, so they run as one errgroup; this is an
// optimization, not a correctness requirement.
func Derive(ctx context.Context, merged []art.MergedRecord, filtered []art.IndicatorRecord, topN int) (*report.DerivedViews, error) {
	views := &report.DerivedViews{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		views.Latest = pipeline.SelectLatest(merged)
		return nil
	})
	g.Go(func() error {
		views.Ranking = pipeline.RankTop(merged, topN)
		return nil
	})
	g.Go(func() error {
		views.Points, views.Fit = pipeline.ScatterPairs(merged)
		return nil
	})
	g.Go(func() error {
		views.Yearly = pipeline.YearlyTotals(filtered)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}

// resolveGeometry annotates each geometry row with an alpha-3 code.
// Unresolved names keep an empty code and render with the neutral fill.
func (s *ReportService) resolveGeometry(geometry []art.GeometryRecord) {
	for i := range geometry {
		if code, ok := s.resolver.Resolve(geometry[i].Region); ok {
			geometry[i].Alpha3 = code
		}
	}
}

// render writes the four charts and the report document.
func (s *ReportService) render(views *report.DerivedViews, geometry []art.GeometryRecord, manifest *report.RunManifest) error {
	outputDir := s.cfg.Report.OutputDir
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return errors.RenderError("failed to create output directory", err)
	}

	title := s.cfg.Report.Title

	figures := reportdoc.Figures{
		Bar:     FigureBar,
		Scatter: FigureScatter,
		Yearly:  FigureYearly,
	}
	if len(geometry) > 0 {
		if err := charts.RenderChoropleth(filepath.Join(outputDir, FigureMap), title+": coverage by country", geometry, latestValueByCode(views.Latest), s.theme); err != nil {
			return err
		}
		figures.Map = FigureMap
	}
	if err := charts.RenderTopBar(filepath.Join(outputDir, FigureBar), "Leading countries, latest reported year", views.Ranking, s.theme); err != nil {
		return err
	}
	if err := charts.RenderScatter(filepath.Join(outputDir, FigureScatter), "Treatment access and national income", views.Points, views.Fit, s.theme); err != nil {
		return err
	}
	if err := charts.RenderYearly(filepath.Join(outputDir, FigureYearly), "Children receiving ART over time", views.Yearly, s.theme); err != nil {
		return err
	}

	stats := summary.Describe(views.Latest)

	// The footer quotes the run duration, so the clock stops before the
	// document is built.
	manifest.Finish()
	md := reportdoc.BuildMarkdown(title, stats, views.Fit, figures, manifest)

	if _, err := reportdoc.WriteDocument(outputDir, md); err != nil {
		return err
	}
	return nil
}

// latestValueByCode flattens the latest-year view into one value per
// alpha-3 code for the map. Tied max-year rows survive upstream; the first
// row per code wins here, which is deterministic because the view preserves
// input order.
func latestValueByCode(latest []art.MergedRecord) map[string]float64 {
	values := make(map[string]float64, len(latest))
	for _, rec := range latest {
		if !rec.HasObs {
			continue
		}
		if _, ok := values[rec.Alpha3]; !ok {
			values[rec.Alpha3] = rec.ObsValue
		}
	}
	return values
}
