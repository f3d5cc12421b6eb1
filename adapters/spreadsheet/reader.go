package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"sheetmap/domain/record"
	"sheetmap/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Accepted content-type labels. The transport layer rejects everything else
// before a Source is ever constructed; the check here is a second gate for
// programmatic callers.
const (
	ContentTypeXLS  = "application/vnd.ms-excel"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeCSV  = "text/csv"
)

// SupportedContentType reports whether the label names a readable container
func SupportedContentType(contentType string) bool {
	switch normalizeContentType(contentType) {
	case ContentTypeXLS, ContentTypeXLSX, ContentTypeCSV:
		return true
	}
	return false
}

func normalizeContentType(contentType string) string {
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

// Source reads a single sheet from a seekable byte stream and yields its
// rows as typed cell values. The stream is reset to its start before the
// first read; each Rows call consumes it once, forward-only.
type Source struct {
	reader      io.ReadSeeker
	contentType string
}

// NewSource creates a row source for the given stream and content type
func NewSource(r io.ReadSeeker, contentType string) (*Source, error) {
	if !SupportedContentType(contentType) {
		return nil, errors.UnsupportedFormat(contentType)
	}
	return &Source{reader: r, contentType: normalizeContentType(contentType)}, nil
}

// Rows materializes all rows of the first sheet. Row 0 is the header row.
// A malformed container is fatal: no partial rows accompany an error.
func (s *Source) Rows() ([][]record.Value, error) {
	if _, err := s.reader.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind upload stream: %w", err)
	}

	switch s.contentType {
	case ContentTypeCSV:
		return s.readCSV()
	default:
		return s.readExcel()
	}
}

// readExcel reads the first sheet of an Excel workbook, using native cell
// types where the file carries them.
func (s *Source) readExcel() ([][]record.Value, error) {
	start := time.Now()
	f, err := excelize.OpenReader(s.reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook contains no sheets")
	}
	sheet := sheets[0]

	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	rows := make([][]record.Value, len(raw))
	for i, rawRow := range raw {
		row := make([]record.Value, len(rawRow))
		for j, cell := range rawRow {
			row[j] = s.classifyExcelCell(f, sheet, i, j, cell)
		}
		rows[i] = row
	}

	log.Printf("[Spreadsheet] Sheet %s read in %.2fms (%d rows)",
		sheet, float64(time.Since(start).Nanoseconds())/1e6, len(rows))
	return rows, nil
}

// classifyExcelCell maps one formatted cell value to a scalar variant. The
// native cell type is a hint only; xlsx files routinely leave numeric cells
// untyped, so untyped cells fall back to text classification.
func (s *Source) classifyExcelCell(f *excelize.File, sheet string, rowIdx, colIdx int, value string) record.Value {
	if strings.TrimSpace(value) == "" {
		return record.Missing()
	}

	ref, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
	if err != nil {
		return record.ParseText(value)
	}

	cellType, err := f.GetCellType(sheet, ref)
	if err != nil {
		return record.ParseText(value)
	}

	switch cellType {
	case excelize.CellTypeBool:
		if b, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return record.NewBool(b)
		}
		return record.NewText(value)
	case excelize.CellTypeInlineString, excelize.CellTypeSharedString:
		return record.NewText(value)
	default:
		return record.ParseText(value)
	}
}

// readCSV reads comma-separated rows, classifying every cell from its text
// since CSV carries no native typing.
func (s *Source) readCSV() ([][]record.Value, error) {
	reader := csv.NewReader(s.reader)
	reader.FieldsPerRecord = -1

	start := time.Now()
	raw, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	rows := make([][]record.Value, len(raw))
	for i, rawRow := range raw {
		row := make([]record.Value, len(rawRow))
		for j, cell := range rawRow {
			row[j] = record.ParseText(cell)
		}
		rows[i] = row
	}

	log.Printf("[Spreadsheet] CSV read in %.2fms (%d rows)",
		float64(time.Since(start).Nanoseconds())/1e6, len(rows))
	return rows, nil
}
