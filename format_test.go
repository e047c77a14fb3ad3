package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatBatchesEmpty(t *testing.T) {
	require.Equal(t, "", FormatBatches(nil))
	require.Equal(t, "", FormatBatches([]Batch{}))
}

func TestFormatBatchesRendersTable(t *testing.T) {
	batch := Batch{
		Columns: []string{"name", "n"},
		Rows:    [][]any{{"alice", int64(1)}, {"bob", int64(20)}},
	}
	expected := strings.Join([]string{
		"+-------+----+",
		"| name  | n  |",
		"+-------+----+",
		"| alice | 1  |",
		"| bob   | 20 |",
		"+-------+----+",
	}, "\n")
	require.Equal(t, expected, FormatBatches([]Batch{batch}))
}

// Splitting the same logical rows across different physical batch counts
// must not change the canonical form.
func TestFormatBatchesIgnoresBatchBoundaries(t *testing.T) {
	whole := []Batch{singleColumn("v", int64(1), int64(2), int64(3), int64(4))}
	split := []Batch{
		singleColumn("v", int64(1)),
		singleColumn("v", int64(2), int64(3)),
		singleColumn("v", int64(4)),
	}
	require.Equal(t, FormatBatches(whole), FormatBatches(split))
}

func TestFormatBatchesDeterministic(t *testing.T) {
	batches := []Batch{singleColumn("v", "a", nil, "c")}
	require.Equal(t, FormatBatches(batches), FormatBatches(batches))
}

func TestRenderValue(t *testing.T) {
	require.Equal(t, "", renderValue(nil))
	require.Equal(t, "text", renderValue("text"))
	require.Equal(t, "text", renderValue([]byte("text")))
	require.Equal(t, "1.5", renderValue(1.5))
	require.Equal(t, "42", renderValue(int64(42)))
	require.Equal(t, "true", renderValue(true))

	date := time.Date(1998, 9, 2, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "1998-09-02", renderValue(date))
	stamp := time.Date(1998, 9, 2, 10, 30, 0, 0, time.UTC)
	require.Equal(t, "1998-09-02 10:30:00", renderValue(stamp))
}
