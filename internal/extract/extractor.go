package extract

import (
	"log"
	"strings"

	"sheetmap/domain/record"
	"sheetmap/internal/errors"
	"sheetmap/ports"
)

// Extractor turns raw sheet rows into dynamic records. Row 0 carries the
// headers; columns whose header is blank carry no identity and are discarded
// for every data row. Stateless across calls.
type Extractor struct{}

// NewExtractor creates a row extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract consumes the row source once and returns one dynamic record per
// data row that produced at least one populated value, in sheet order.
// A malformed container is the only fatal failure; blank headers and empty
// rows are skipped with a diagnostic log line.
func (e *Extractor) Extract(source ports.RowSource) ([]*record.Dynamic, error) {
	rows, err := source.Rows()
	if err != nil {
		return nil, errors.ParseError(err)
	}
	return e.FromRows(rows), nil
}

// FromRows extracts dynamic records from already-materialized rows. Row 0 is
// the header row.
func (e *Extractor) FromRows(rows [][]record.Value) []*record.Dynamic {
	if len(rows) == 0 {
		log.Printf("[RowExtractor] Sheet contains no rows")
		return nil
	}

	headers := e.extractHeaders(rows[0])

	var records []*record.Dynamic
	skipped := 0
	for i := 1; i < len(rows); i++ {
		rec := e.extractRow(headers, rows[i])
		if rec.Len() == 0 {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	if skipped > 0 {
		log.Printf("[RowExtractor] Skipped %d empty data rows", skipped)
	}
	log.Printf("[RowExtractor] Extracted %d records from %d data rows", len(records), len(rows)-1)

	return records
}

// extractHeaders reads row 0 into per-column header names. Columns with a
// blank header get an empty name and are excluded from every data row.
func (e *Extractor) extractHeaders(headerRow []record.Value) []string {
	headers := make([]string, len(headerRow))
	blank := 0
	for i, cell := range headerRow {
		if cell.IsBlank() {
			blank++
			continue
		}
		headers[i] = strings.TrimSpace(cell.String())
	}
	if blank > 0 {
		log.Printf("[RowExtractor] Ignoring %d unnamed columns", blank)
	}
	return headers
}

// extractRow builds a dynamic record for one data row under the retained
// headers. Blank cells produce no entry; duplicate headers follow
// last-write-wins.
func (e *Extractor) extractRow(headers []string, row []record.Value) *record.Dynamic {
	rec := record.NewDynamic()
	for i, cell := range row {
		if i >= len(headers) || headers[i] == "" {
			continue
		}
		if cell.IsBlank() {
			continue
		}
		rec.Set(headers[i], cell)
	}
	return rec
}
