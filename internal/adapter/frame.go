package adapter

import (
	"fmt"

	"github.com/sciframe-io/sciframe/internal/frame"
)

// FrameFromRows materializes a query result into a frame, consuming rows.
// []byte cells are normalized to strings for readability.
func FrameFromRows(rows *Rows, name string) (*frame.Frame, error) {
	defer func() { _ = rows.Close() }()

	colNames, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	cols := make([]frame.Column, len(colNames))
	for i, colName := range colNames {
		cols[i].Name = colName
	}

	for rows.Next() {
		values := make([]any, len(colNames))
		valuePtrs := make([]any, len(colNames))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		for i, val := range values {
			if b, ok := val.([]byte); ok {
				val = string(b)
			}
			cols[i].Values = append(cols[i].Values, val)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read result rows: %w", err)
	}

	return frame.New(cols, frame.WithName(name))
}
