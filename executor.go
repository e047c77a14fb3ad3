package main

import (
	"fmt"
	"time"
)

// ExecutionResult holds one query's timing and its materialized output:
// one batch sequence per statement that yielded rows.
type ExecutionResult struct {
	Elapsed time.Duration
	Results [][]Batch
}

// ExecuteQuery submits every statement of one query to the engine and
// collects the batches. The timing window spans submission and collection
// of all statements together; statements that produce no rows still count
// toward timing but contribute no entry to Results. Errors propagate, the
// harness has no per-query isolation.
func ExecuteQuery(engine SQLEngine, statements []string) (ExecutionResult, error) {
	collected := make([][]Batch, 0, len(statements))

	start := time.Now()
	for i, statement := range statements {
		batches, err := engine.Query(statement)
		if err != nil {
			return ExecutionResult{}, fmt.Errorf("statement #%v failed: %w", i+1, err)
		}
		collected = append(collected, batches)
	}
	elapsed := time.Since(start)

	results := make([][]Batch, 0, len(collected))
	for _, batches := range collected {
		if totalRows(batches) == 0 {
			continue
		}
		results = append(results, batches)
	}
	return ExecutionResult{Elapsed: elapsed, Results: results}, nil
}
