package sheets

import (
	"context"

	"budget/internal/core"
)

// Ports for outbound spreadsheet adapters.
type (
	// ColumnReader reads the given column ranges in one call, column-major,
	// returning one list of raw cell values per requested range. A range
	// with no data yields a nil list.
	ColumnReader interface {
		ReadColumns(ctx context.Context, ranges []string) ([][]string, error)
	}

	// EntryAppender appends a single logical row with each of the entry's
	// five fields written as its own column.
	EntryAppender interface {
		Append(ctx context.Context, e core.BudgetEntry) (AppendResult, error)
	}
)

// AppendResult is the confirmation payload of a successful append,
// relayed to the client as-is.
type AppendResult struct {
	SpreadsheetID string `json:"spreadsheetId,omitempty"`
	UpdatedRange  string `json:"updatedRange,omitempty"`
	UpdatedRows   int64  `json:"updatedRows"`
	UpdatedCells  int64  `json:"updatedCells"`
}
