// Package analyzer orchestrates the scoring pipeline: normalize the message
// snapshot, build per-author timelines, aggregate monthly records, and
// render the report.
package analyzer

import (
	"fmt"
	"runtime"
	"time"

	"github.com/rivertam/pants-off-podrick/internal/core/constants"
	"github.com/rivertam/pants-off-podrick/internal/core/model"
	"github.com/rivertam/pants-off-podrick/internal/core/score"
	"github.com/rivertam/pants-off-podrick/internal/core/timeline"
	"github.com/rivertam/pants-off-podrick/internal/data/parser"
	"github.com/rivertam/pants-off-podrick/internal/data/scanner"
	"github.com/rivertam/pants-off-podrick/internal/presentation/formatter"
	"github.com/rivertam/pants-off-podrick/internal/util"
)

type Config struct {
	Timezone    string
	Concurrency int
	Clock       func() time.Time // nil means time.Now
}

type Analyzer struct {
	config *Config
	loc    *time.Location
	table  *formatter.TableFormatter
	json   *formatter.JSONFormatter
}

func New(config *Config) (*Analyzer, error) {
	if config.Concurrency == 0 {
		config.Concurrency = runtime.NumCPU()
	}

	loc, err := util.LoadTimezone(config.Timezone)
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		config: config,
		loc:    loc,
		table:  formatter.NewTableFormatter(),
		json:   formatter.NewJSONFormatter(),
	}, nil
}

// Aggregate runs classification over an owned message snapshot.
func (a *Analyzer) Aggregate(msgs []model.RawMessage) (*score.Result, error) {
	normalizeStart := time.Now()
	events := timeline.Normalize(msgs)
	util.LogDebug(fmt.Sprintf("Phase 1 - Normalized %d of %d messages in %v",
		len(events), len(msgs), time.Since(normalizeStart)))

	buildStart := time.Now()
	tl, authors := timeline.Build(events)
	util.LogDebug(fmt.Sprintf("Phase 2 - Built timelines for %d authors in %v",
		len(authors), time.Since(buildStart)))

	aggregateStart := time.Now()
	agg := score.NewAggregator(a.loc)
	if a.config.Clock != nil {
		agg.SetClock(a.config.Clock)
	}
	result, err := agg.Aggregate(tl, authors)
	if err != nil {
		return nil, err
	}
	util.LogDebug(fmt.Sprintf("Phase 3 - Aggregated %d months in %v",
		len(result.Months), time.Since(aggregateStart)))

	return result, nil
}

// RenderTable renders the result as a table. Summary mode (full=false)
// trims oldest rows until the output fits the character budget.
func (a *Analyzer) RenderTable(result *score.Result, names map[string]string, full bool) string {
	rows := formatter.BuildRows(result, names)
	return a.table.Render(rows, full, constants.SummaryCharBudget)
}

// ComputeReport is the end-to-end operation: aggregate the snapshot and
// render it. Deterministic for a fixed snapshot, timezone, and clock.
func (a *Analyzer) ComputeReport(msgs []model.RawMessage, names map[string]string, full bool) (string, error) {
	result, err := a.Aggregate(msgs)
	if err != nil {
		return "", err
	}
	return a.RenderTable(result, names, full), nil
}

// ComputeJSON aggregates the snapshot and serializes the result for machine
// consumption in the offline analyzer.
func (a *Analyzer) ComputeJSON(msgs []model.RawMessage, names map[string]string) (string, error) {
	result, err := a.Aggregate(msgs)
	if err != nil {
		return "", err
	}
	return a.json.Format(result, names)
}

// LoadExports scans path (a .jsonl file or a directory of them) and parses
// every export concurrently into one snapshot. Individual unreadable files
// are logged and skipped; the run fails only when nothing could be read.
func (a *Analyzer) LoadExports(path string) ([]model.RawMessage, error) {
	files, err := scanner.NewFileScanner(path).Scan()
	if err != nil {
		return nil, fmt.Errorf("scanning exports: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no export files found under %s", path)
	}

	var msgs []model.RawMessage
	parsed := 0
	for result := range parser.NewParser(a.config.Concurrency).ParseFiles(files) {
		if result.Error != nil {
			util.LogWarn(fmt.Sprintf("Failed to parse export %s: %v", result.File, result.Error))
			continue
		}
		parsed++
		msgs = append(msgs, result.Messages...)
	}
	if parsed == 0 {
		return nil, fmt.Errorf("no export file under %s could be parsed", path)
	}

	util.LogInfo(fmt.Sprintf("Loaded %d messages from %d export files", len(msgs), parsed))
	return msgs, nil
}
