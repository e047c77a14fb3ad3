package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

// drainDelay gives the distributed runtime a moment to release cluster
// resources after the last query. A fixed wait, not event-driven; a
// runtime with a release acknowledgment could replace it. Variable so
// tests do not sleep through it.
var drainDelay = 3 * time.Second

// Harness drives one benchmark run end to end: open the execution
// context, register the dataset, run every query in order, validate when
// asked, and record each outcome as it completes. Single control thread;
// all concurrency lives inside the engines.
type Harness struct {
	cfg     Config
	queries []BenchQuery

	// engine factories, swappable in tests
	openContext   func(Config) (SQLEngine, error)
	openReference func(Config) (SQLEngine, error)

	reportDir string
	out       io.Writer
	results   *ResultsDB
}

func NewHarness(cfg Config, queries []BenchQuery) *Harness {
	return &Harness{
		cfg:     cfg,
		queries: queries,
		openContext: func(cfg Config) (SQLEngine, error) {
			return NewBenchmarkContext(cfg)
		},
		openReference: func(cfg Config) (SQLEngine, error) {
			return NewReferenceEngine(cfg)
		},
		reportDir: ".",
		out:       os.Stdout,
	}
}

// Run executes the whole benchmark. It returns false when validation was
// enabled and at least one query's outcome is false; errors are fatal
// mid-run failures. Prior queries' results stay durably written either
// way.
func (h *Harness) Run() (bool, error) {
	Logger.Infof("start benchmark")
	Logger.Infof("host stat: %+v", HostStat())

	execCtx, err := h.openContext(h.cfg)
	if err != nil {
		return false, fmt.Errorf("failed to open execution context: %w", err)
	}
	defer execCtx.Close()

	if err := RegisterTables(execCtx, h.cfg.DataPath, h.cfg.BindMode()); err != nil {
		return false, err
	}

	var reference SQLEngine
	if h.cfg.Validate {
		reference, err = h.openReference(h.cfg)
		if err != nil {
			return false, fmt.Errorf("failed to open reference engine: %w", err)
		}
		defer reference.Close()
		if err := RegisterTables(reference, h.cfg.DataPath, h.cfg.BindMode()); err != nil {
			return false, err
		}
	}

	writer := NewReportWriter(h.cfg, h.reportDir, h.out, h.results)
	Logger.Infof("writing results to %v", writer.Path())

	for _, query := range h.queries {
		Logger.Infof("executing query %v", query.ID)
		statements := SplitStatements(query.SQL)

		result, err := ExecuteQuery(execCtx, statements)
		if err != nil {
			return false, fmt.Errorf("query %v failed: %w", query.ID, err)
		}

		calculated := make([]string, 0, len(result.Results))
		for _, batches := range result.Results {
			pretty := FormatBatches(batches)
			calculated = append(calculated, pretty)
			fmt.Fprintln(h.out, pretty)
		}

		var outcome *bool
		if h.cfg.Validate {
			valid, err := ValidateQuery(reference, statements, calculated, h.out)
			if err != nil {
				return false, fmt.Errorf("query %v validation failed: %w", query.ID, err)
			}
			outcome = &valid
			mark := color.GreenString("PASS")
			if !valid {
				mark = color.RedString("FAIL")
			}
			fmt.Fprintf(h.out, "query %v: %v\n", query.ID, mark)
		}

		if err := writer.Record(query.ID, result.Elapsed, outcome); err != nil {
			return false, err
		}
		Logger.Infof("done with query %v in %v", query.ID, result.Elapsed)
	}

	Logger.Infof("benchmark complete, draining for %v before shutdown", drainDelay)
	time.Sleep(drainDelay)

	if writer.Failed() {
		Logger.Errorf("possible incorrect query result")
		return false, nil
	}
	return true, nil
}
