package memory

import (
	"context"
	"sort"
	"sync"

	"sheetmap/domain/core"
	"sheetmap/domain/ingest"
	"sheetmap/ports"
)

// importRepository keeps import history in memory. Used when no database is
// configured; history does not survive a restart.
type importRepository struct {
	mu      sync.RWMutex
	imports map[core.ImportID]*ingest.Import
}

// NewImportRepository creates an in-memory import repository
func NewImportRepository() ports.ImportRepository {
	return &importRepository{imports: make(map[core.ImportID]*ingest.Import)}
}

func (r *importRepository) Create(ctx context.Context, imp *ingest.Import) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *imp
	r.imports[imp.ID] = &stored
	return nil
}

func (r *importRepository) GetByID(ctx context.Context, id core.ImportID) (*ingest.Import, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	imp, ok := r.imports[id]
	if !ok {
		return nil, core.NewNotFoundError("import", id.String())
	}
	out := *imp
	return &out, nil
}

func (r *importRepository) List(ctx context.Context, limit, offset int) ([]*ingest.Import, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*ingest.Import, 0, len(r.imports))
	for _, imp := range r.imports {
		out := *imp
		all = append(all, &out)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[j].CreatedAt.Before(all[i].CreatedAt)
	})

	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *importRepository) Update(ctx context.Context, imp *ingest.Import) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.imports[imp.ID]; !ok {
		return core.NewNotFoundError("import", imp.ID.String())
	}
	stored := *imp
	r.imports[imp.ID] = &stored
	return nil
}
