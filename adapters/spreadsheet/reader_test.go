package spreadsheet

import (
	"bytes"
	"strings"
	"testing"

	"sheetmap/domain/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSupportedContentType(t *testing.T) {
	assert.True(t, SupportedContentType(ContentTypeCSV))
	assert.True(t, SupportedContentType(ContentTypeXLS))
	assert.True(t, SupportedContentType(ContentTypeXLSX))
	assert.True(t, SupportedContentType("text/csv; charset=utf-8"))

	assert.False(t, SupportedContentType("application/json"))
	assert.False(t, SupportedContentType(""))
}

func TestNewSourceRejectsUnsupportedType(t *testing.T) {
	_, err := NewSource(strings.NewReader(""), "application/pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported content type")
}

func TestCSVRows(t *testing.T) {
	csvData := "Name,Age,Active\nJohn,30,true\nJane,25,false\n"

	source, err := NewSource(strings.NewReader(csvData), ContentTypeCSV)
	require.NoError(t, err)

	rows, err := source.Rows()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, record.KindText, rows[0][0].Kind)
	assert.Equal(t, "Name", rows[0][0].AsText())

	assert.Equal(t, record.KindText, rows[1][0].Kind)
	assert.Equal(t, record.KindInt, rows[1][1].Kind)
	assert.Equal(t, int64(30), rows[1][1].AsInt())
	assert.Equal(t, record.KindBool, rows[1][2].Kind)
	assert.True(t, rows[1][2].AsBool())
}

func TestCSVRowsRereadFromStart(t *testing.T) {
	csvData := "Name\nJohn\n"
	source, err := NewSource(strings.NewReader(csvData), ContentTypeCSV)
	require.NoError(t, err)

	first, err := source.Rows()
	require.NoError(t, err)

	// the stream is rewound before every read
	second, err := source.Rows()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCSVMalformedFails(t *testing.T) {
	csvData := "Name,Age\n\"unterminated,30\n"
	source, err := NewSource(strings.NewReader(csvData), ContentTypeCSV)
	require.NoError(t, err)

	rows, err := source.Rows()
	require.Error(t, err)
	assert.Nil(t, rows)
}

func buildWorkbook(t *testing.T) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Name"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "Age"))
	require.NoError(t, f.SetCellValue("Sheet1", "C1", "Active"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "John Doe"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", 30))
	require.NoError(t, f.SetCellValue("Sheet1", "C2", true))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	return bytes.NewReader(buf.Bytes())
}

func TestExcelRows(t *testing.T) {
	source, err := NewSource(buildWorkbook(t), ContentTypeXLSX)
	require.NoError(t, err)

	rows, err := source.Rows()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Name", rows[0][0].String())
	assert.Equal(t, "John Doe", rows[1][0].String())

	age, ok := record.Convert(rows[1][1], record.KindInt)
	require.True(t, ok, "numeric cell must convert to int")
	assert.Equal(t, int64(30), age.AsInt())

	active, ok := record.Convert(rows[1][2], record.KindBool)
	require.True(t, ok, "boolean cell must convert to bool")
	assert.True(t, active.AsBool())
}

func TestExcelMalformedFails(t *testing.T) {
	source, err := NewSource(bytes.NewReader([]byte("definitely not a workbook")), ContentTypeXLSX)
	require.NoError(t, err)

	rows, err := source.Rows()
	require.Error(t, err)
	assert.Nil(t, rows, "no partial rows on a malformed container")
}
