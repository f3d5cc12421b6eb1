package ports

import (
	"context"

	"sheetmap/domain/core"
	"sheetmap/domain/ingest"
)

// ImportRepository persists import history
type ImportRepository interface {
	Create(ctx context.Context, imp *ingest.Import) error
	GetByID(ctx context.Context, id core.ImportID) (*ingest.Import, error)
	List(ctx context.Context, limit, offset int) ([]*ingest.Import, error)
	Update(ctx context.Context, imp *ingest.Import) error
}
