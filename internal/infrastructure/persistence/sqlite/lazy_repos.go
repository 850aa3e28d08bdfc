package sqlite

import (
	"context"
	"database/sql"
	"sync"

	"github.com/termify/termify/internal/application/port"
	"github.com/termify/termify/internal/domain/entity"
	"github.com/termify/termify/internal/domain/repository"
)

// lazyInit resolves a repository from a provider once.
type lazyInit[T any] struct {
	provider port.DatabaseProvider
	build    func(*sql.DB) T
	once     sync.Once
	repo     T
	err      error
}

func (l *lazyInit[T]) get(ctx context.Context) (T, error) {
	l.once.Do(func() {
		db, err := l.provider.DB(ctx)
		if err != nil {
			l.err = err
			return
		}
		l.repo = l.build(db)
	})
	return l.repo, l.err
}

// LazyLayoutRepository defers opening the database until a layout is
// actually read or written.
type LazyLayoutRepository struct {
	init lazyInit[repository.LayoutRepository]
}

// NewLazyLayoutRepository creates a layout repository over a lazy provider.
func NewLazyLayoutRepository(provider port.DatabaseProvider) *LazyLayoutRepository {
	return &LazyLayoutRepository{init: lazyInit[repository.LayoutRepository]{
		provider: provider,
		build:    NewLayoutRepository,
	}}
}

func (r *LazyLayoutRepository) Save(ctx context.Context, state *entity.LayoutState) error {
	repo, err := r.init.get(ctx)
	if err != nil {
		return err
	}
	return repo.Save(ctx, state)
}

func (r *LazyLayoutRepository) Get(ctx context.Context, id entity.WorkspaceID) (*entity.LayoutState, error) {
	repo, err := r.init.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, id)
}

func (r *LazyLayoutRepository) Delete(ctx context.Context, id entity.WorkspaceID) error {
	repo, err := r.init.get(ctx)
	if err != nil {
		return err
	}
	return repo.Delete(ctx, id)
}

// LazyAppStateRepository defers opening the database until app state is used.
type LazyAppStateRepository struct {
	init lazyInit[repository.AppStateRepository]
}

// NewLazyAppStateRepository creates an app state repository over a lazy provider.
func NewLazyAppStateRepository(provider port.DatabaseProvider) *LazyAppStateRepository {
	return &LazyAppStateRepository{init: lazyInit[repository.AppStateRepository]{
		provider: provider,
		build:    NewAppStateRepository,
	}}
}

func (r *LazyAppStateRepository) GetLastWorkspace(ctx context.Context) (entity.WorkspaceID, error) {
	repo, err := r.init.get(ctx)
	if err != nil {
		return "", err
	}
	return repo.GetLastWorkspace(ctx)
}

func (r *LazyAppStateRepository) SetLastWorkspace(ctx context.Context, id entity.WorkspaceID) error {
	repo, err := r.init.get(ctx)
	if err != nil {
		return err
	}
	return repo.SetLastWorkspace(ctx, id)
}

var (
	_ repository.LayoutRepository   = (*LazyLayoutRepository)(nil)
	_ repository.AppStateRepository = (*LazyAppStateRepository)(nil)
)
