package main

import (
	"embed"
	"fmt"
	"strconv"
	"strings"
)

// CustomQueryID tags an ad hoc query supplied with --query.
const CustomQueryID = "custom query"

//go:embed queries/*.sql
var queryBank embed.FS

// BenchQuery pairs a query identifier with its SQL text. The text may
// hold several `;`-separated statements.
type BenchQuery struct {
	ID  string
	SQL string
}

// TpchQuery loads one numbered query from the embedded catalog.
func TpchQuery(qnum int) (string, error) {
	data, err := queryBank.ReadFile(fmt.Sprintf("queries/q%d.sql", qnum))
	if err != nil {
		return "", fmt.Errorf("failed to load tpch query %v: %w", qnum, err)
	}
	return string(data), nil
}

// SelectQueries resolves the query selection flags into the list of
// queries to run. A numbered query wins over an ad hoc one when both are
// given; that combination only earns an advisory message, matching the
// long-standing behavior of this benchmark.
func SelectQueries(qnum int, custom string) ([]BenchQuery, error) {
	if qnum != -1 && custom != "" {
		fmt.Println("Please specify either --qnum or --query, but not both")
	}
	if qnum != -1 {
		if qnum < 1 || qnum > 22 {
			return nil, fmt.Errorf("invalid query number %v: please specify a number between 1 and 22", qnum)
		}
		sql, err := TpchQuery(qnum)
		if err != nil {
			return nil, err
		}
		Logger.Infof("executing tpch query %v", qnum)
		return []BenchQuery{{ID: strconv.Itoa(qnum), SQL: sql}}, nil
	}
	if custom != "" {
		Logger.Infof("executing custom query %v", custom)
		return []BenchQuery{{ID: CustomQueryID, SQL: custom}}, nil
	}
	Logger.Infof("executing all tpch queries")
	queries := make([]BenchQuery, 0, 22)
	for qnum := 1; qnum <= 22; qnum++ {
		sql, err := TpchQuery(qnum)
		if err != nil {
			return nil, err
		}
		queries = append(queries, BenchQuery{ID: strconv.Itoa(qnum), SQL: sql})
	}
	return queries, nil
}

// SplitStatements cuts a query into its `;`-separated statements,
// dropping whitespace-only fragments and keeping the rest verbatim.
func SplitStatements(sql string) []string {
	parts := strings.Split(sql, ";")
	statements := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		statements = append(statements, part)
	}
	return statements
}
