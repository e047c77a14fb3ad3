package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExecuteQueryCollectsPerStatement(t *testing.T) {
	engine := newStubEngine()
	engine.on("SELECT 1", singleColumn("v", int64(1)))
	engine.on("SELECT 2", singleColumn("v", int64(2)))

	result, err := ExecuteQuery(engine, []string{"SELECT 1", "SELECT 2"})
	require.Nil(t, err)
	require.Len(t, result.Results, 2)
	require.Equal(t, []string{"SELECT 1", "SELECT 2"}, engine.executed)
	require.GreaterOrEqual(t, result.Elapsed.Nanoseconds(), int64(0))
}

func TestExecuteQueryDropsRowlessStatements(t *testing.T) {
	engine := newStubEngine()
	engine.on("CREATE VIEW v AS SELECT 1")
	engine.on("SELECT * FROM v", singleColumn("v", int64(1)))
	engine.on("DROP VIEW v")

	result, err := ExecuteQuery(engine, []string{
		"CREATE VIEW v AS SELECT 1",
		"SELECT * FROM v",
		"DROP VIEW v",
	})
	require.Nil(t, err)
	// row-less statements are timed but not part of the output
	require.Len(t, result.Results, 1)
	require.Len(t, engine.executed, 3)
}

func TestExecuteQueryPropagatesFailure(t *testing.T) {
	engine := newStubEngine()
	engine.on("SELECT 1", singleColumn("v", int64(1)))
	engine.failQuery = "SELECT boom"

	_, err := ExecuteQuery(engine, []string{"SELECT 1", "SELECT boom"})
	require.NotNil(t, err)
	require.ErrorContains(t, err, "statement #2")
}
