package main

// Batch is one materialized chunk of rows produced by a SQL statement.
// Values are whatever the engine's driver scanned; rendering to a
// comparable form is the formatter's job.
type Batch struct {
	Columns []string
	Rows    [][]any
}

// SQLEngine is the narrow surface the harness consumes from any query
// engine, benchmarked or reference: bind named datasets, run SQL, hand
// back ordered row batches.
type SQLEngine interface {
	RegisterTable(name string, path string, mode BindMode) error
	Query(sql string) ([]Batch, error)
	Close() error
}

func totalRows(batches []Batch) int {
	rows := 0
	for _, batch := range batches {
		rows += len(batch.Rows)
	}
	return rows
}
