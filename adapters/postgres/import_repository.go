package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"sheetmap/domain/core"
	"sheetmap/domain/ingest"
	"sheetmap/ports"

	"github.com/jmoiron/sqlx"
)

// importRepository implements the ImportRepository interface
type importRepository struct {
	db *sqlx.DB
}

// NewImportRepository creates a new import repository
func NewImportRepository(db *sqlx.DB) ports.ImportRepository {
	return &importRepository{db: db}
}

// Create inserts a new import into the database
func (r *importRepository) Create(ctx context.Context, imp *ingest.Import) error {
	query := `INSERT INTO imports (
		id, original_filename, content_type, file_size, checksum,
		row_count, record_count, dropped_count, status, error_message,
		created_at, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
	)`

	_, err := r.db.ExecContext(ctx, query,
		imp.ID, imp.OriginalFilename, imp.ContentType, imp.FileSize, imp.Checksum,
		imp.RowCount, imp.RecordCount, imp.DroppedCount, imp.Status, imp.ErrorMessage,
		imp.CreatedAt.Time(), imp.UpdatedAt.Time(),
	)
	if err != nil {
		return fmt.Errorf("failed to create import: %w", err)
	}

	return nil
}

// GetByID retrieves an import by its ID
func (r *importRepository) GetByID(ctx context.Context, id core.ImportID) (*ingest.Import, error) {
	query := `SELECT
		id, original_filename, content_type, COALESCE(file_size, 0) as file_size,
		COALESCE(checksum, '') as checksum, COALESCE(row_count, 0) as row_count,
		COALESCE(record_count, 0) as record_count, COALESCE(dropped_count, 0) as dropped_count,
		status, COALESCE(error_message, '') as error_message, created_at, updated_at
	FROM imports WHERE id = $1`

	imp, err := r.scanImport(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, core.NewNotFoundError("import", id.String())
		}
		return nil, fmt.Errorf("failed to get import: %w", err)
	}
	return imp, nil
}

// List retrieves imports in reverse chronological order with pagination
func (r *importRepository) List(ctx context.Context, limit, offset int) ([]*ingest.Import, error) {
	query := `SELECT
		id, original_filename, content_type, COALESCE(file_size, 0) as file_size,
		COALESCE(checksum, '') as checksum, COALESCE(row_count, 0) as row_count,
		COALESCE(record_count, 0) as record_count, COALESCE(dropped_count, 0) as dropped_count,
		status, COALESCE(error_message, '') as error_message, created_at, updated_at
	FROM imports
	ORDER BY created_at DESC
	LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list imports: %w", err)
	}
	defer rows.Close()

	var imports []*ingest.Import
	for rows.Next() {
		imp, err := r.scanImport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan import: %w", err)
		}
		imports = append(imports, imp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate imports: %w", err)
	}

	return imports, nil
}

// Update persists the current state of an import
func (r *importRepository) Update(ctx context.Context, imp *ingest.Import) error {
	query := `UPDATE imports SET
		row_count = $2, record_count = $3, dropped_count = $4,
		status = $5, error_message = $6, updated_at = $7
	WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		imp.ID, imp.RowCount, imp.RecordCount, imp.DroppedCount,
		imp.Status, imp.ErrorMessage, imp.UpdatedAt.Time(),
	)
	if err != nil {
		return fmt.Errorf("failed to update import: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return core.NewNotFoundError("import", imp.ID.String())
	}

	return nil
}

// scanner abstracts sql.Row and sql.Rows for shared scanning
type scanner interface {
	Scan(dest ...interface{}) error
}

func (r *importRepository) scanImport(row scanner) (*ingest.Import, error) {
	var imp ingest.Import
	err := row.Scan(
		&imp.ID, &imp.OriginalFilename, &imp.ContentType, &imp.FileSize,
		&imp.Checksum, &imp.RowCount, &imp.RecordCount, &imp.DroppedCount,
		&imp.Status, &imp.ErrorMessage, &imp.CreatedAt, &imp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &imp, nil
}
