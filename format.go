package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatBatches canonicalizes one statement's batch sequence into an
// aligned ASCII table. Batches are concatenated before rendering, so the
// same logical rows produce the same text no matter how the engine chose
// to split them physically. Both engines' output goes through this exact
// renderer; that symmetry is what makes cross-engine comparison sound.
func FormatBatches(batches []Batch) string {
	if len(batches) == 0 {
		return ""
	}
	columns := batches[0].Columns
	rows := make([][]string, 0, totalRows(batches))
	for _, batch := range batches {
		for _, row := range batch.Rows {
			rendered := make([]string, len(row))
			for i, value := range row {
				rendered[i] = renderValue(value)
			}
			rows = append(rows, rendered)
		}
	}

	widths := make([]int, len(columns))
	for i, column := range columns {
		widths[i] = len(column)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	border := renderBorder(widths)
	sb.WriteString(border)
	sb.WriteString(renderRow(columns, widths))
	sb.WriteString(border)
	for _, row := range rows {
		sb.WriteString(renderRow(row, widths))
	}
	sb.WriteString(border)
	return strings.TrimSuffix(sb.String(), "\n")
}

func renderBorder(widths []int) string {
	var sb strings.Builder
	for _, width := range widths {
		sb.WriteByte('+')
		sb.WriteString(strings.Repeat("-", width+2))
	}
	sb.WriteString("+\n")
	return sb.String()
}

func renderRow(cells []string, widths []int) string {
	var sb strings.Builder
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString("| ")
		sb.WriteString(cell)
		sb.WriteString(strings.Repeat(" ", width-len(cell)))
		sb.WriteByte(' ')
	}
	sb.WriteString("|\n")
	return sb.String()
}

// renderValue normalizes a scanned driver value. The rules here only need
// to be deterministic and engine-agnostic, not pretty: NULL renders empty,
// floats drop trailing zeros, dates without a time-of-day render as plain
// dates.
func renderValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case time.Time:
		u := v.UTC()
		if u.Hour() == 0 && u.Minute() == 0 && u.Second() == 0 && u.Nanosecond() == 0 {
			return u.Format("2006-01-02")
		}
		return u.Format("2006-01-02 15:04:05.999999999")
	default:
		return fmt.Sprintf("%v", v)
	}
}
