package ports

import (
	"sheetmap/domain/record"
)

// RowSource yields the fully materialized rows of a single sheet. Row 0 is
// the header row. Cells surface as typed scalar variants; absent cells are
// missing values. Implementations read their underlying stream forward-only
// and reset it to the start before the first read.
type RowSource interface {
	// Rows returns all raw rows in sheet order. A malformed container is
	// fatal: no partial rows are returned alongside an error.
	Rows() ([][]record.Value, error)
}
