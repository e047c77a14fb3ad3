package main

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
)

// DuckDBEngine adapts an in-process DuckDB session to the SQLEngine
// surface. The same adapter backs both execution paths: the benchmarked
// context gets the configured thread count, the reference engine runs
// single-threaded.
//
// Partitions-per-worker, prefetch buffering and the worker pool minimum
// are options for distributed runtimes; they are echoed into the report
// but have no effect on a local session.
type DuckDBEngine struct {
	db        *sql.DB
	batchSize int
}

func NewBenchmarkContext(cfg Config) (*DuckDBEngine, error) {
	Logger.Infof("opening execution context: concurrency=%v batch_size=%v prefetch_buffer_size=%v",
		cfg.Concurrency, cfg.BatchSize, cfg.PrefetchBufferSize)
	return openDuckDB(cfg.Concurrency, cfg.BatchSize)
}

func NewReferenceEngine(cfg Config) (*DuckDBEngine, error) {
	Logger.Infof("opening reference engine")
	return openDuckDB(1, cfg.BatchSize)
}

func openDuckDB(threads int, batchSize int) (*DuckDBEngine, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb session: %w", err)
	}
	if _, err := db.Exec(fmt.Sprintf("SET threads = %d", threads)); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set threads to %v: %w", threads, err)
	}
	return &DuckDBEngine{db: db, batchSize: batchSize}, nil
}

func (e *DuckDBEngine) RegisterTable(name string, path string, mode BindMode) error {
	source := path
	if mode == BindListing {
		// path is a directory of parquet parts under listing binding
		source = path + "/*.parquet"
	}
	stmt := fmt.Sprintf("CREATE OR REPLACE VIEW %s AS SELECT * FROM read_parquet(%s)",
		quoteIdent(name), quoteString(source))
	if _, err := e.db.Exec(stmt); err != nil {
		return fmt.Errorf("failed to register table %v at %v: %w", name, path, err)
	}
	return nil
}

// Query runs one statement and materializes every row, chunked into
// batches of at most batchSize rows.
func (e *DuckDBEngine) Query(query string) ([]Batch, error) {
	rows, err := e.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("statement failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	batches := make([]Batch, 0)
	batch := Batch{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		batch.Rows = append(batch.Rows, values)
		if e.batchSize > 0 && len(batch.Rows) >= e.batchSize {
			batches = append(batches, batch)
			batch = Batch{Columns: columns}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to collect result rows: %w", err)
	}
	if len(batch.Rows) > 0 {
		batches = append(batches, batch)
	}
	return batches, nil
}

func (e *DuckDBEngine) Close() error {
	return e.db.Close()
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteString(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}
