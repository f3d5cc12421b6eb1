package ingest

import (
	"sheetmap/domain/core"
)

// ImportStatus tracks the lifecycle of one upload
type ImportStatus string

const (
	StatusProcessing ImportStatus = "processing"
	StatusCompleted  ImportStatus = "completed"
	StatusFailed     ImportStatus = "failed"
)

// Import records the outcome of one spreadsheet upload
type Import struct {
	ID               core.ImportID     `json:"id" db:"id"`
	OriginalFilename string            `json:"original_filename" db:"original_filename"`
	ContentType      string            `json:"content_type" db:"content_type"`
	FileSize         int64             `json:"file_size" db:"file_size"`
	Checksum         core.FileChecksum `json:"checksum" db:"checksum"`
	RowCount         int               `json:"row_count" db:"row_count"`
	RecordCount      int               `json:"record_count" db:"record_count"`
	DroppedCount     int               `json:"dropped_count" db:"dropped_count"`
	Status           ImportStatus      `json:"status" db:"status"`
	ErrorMessage     string            `json:"error_message,omitempty" db:"error_message"`
	CreatedAt        core.Timestamp    `json:"created_at" db:"created_at"`
	UpdatedAt        core.Timestamp    `json:"updated_at" db:"updated_at"`
}

// NewImport creates a processing-state import for an incoming upload
func NewImport(filename, contentType string, size int64, checksum core.FileChecksum) *Import {
	now := core.Now()
	return &Import{
		ID:               core.NewImportID(),
		OriginalFilename: filename,
		ContentType:      contentType,
		FileSize:         size,
		Checksum:         checksum,
		Status:           StatusProcessing,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Complete marks the import as successfully processed
func (i *Import) Complete(rowCount, recordCount, droppedCount int) {
	i.RowCount = rowCount
	i.RecordCount = recordCount
	i.DroppedCount = droppedCount
	i.Status = StatusCompleted
	i.UpdatedAt = core.Now()
}

// Fail marks the import as failed with the parse error message
func (i *Import) Fail(message string) {
	i.Status = StatusFailed
	i.ErrorMessage = message
	i.UpdatedAt = core.Now()
}
