package localstore

import (
	"context"

	"github.com/trezcool/unirepo/core"
	"github.com/trezcool/unirepo/core/supervision"
)

type supervisionRepository struct {
	supervisions collection[supervision.Supervision]
}

var _ supervision.Repository = (*supervisionRepository)(nil) // interface compliance check

func NewSupervisionRepository(db *DB) supervision.Repository {
	return &supervisionRepository{
		supervisions: newCollection(db, core.KeySupervisions, func(s supervision.Supervision) string { return s.ID }),
	}
}

func (repo *supervisionRepository) CreateSupervision(ctx context.Context, s supervision.Supervision) (supervision.Supervision, error) {
	if err := repo.supervisions.insert(ctx, s); err != nil {
		return supervision.Supervision{}, err
	}
	return s, nil
}

func (repo *supervisionRepository) SaveSupervision(ctx context.Context, s supervision.Supervision) (supervision.Supervision, error) {
	if err := repo.supervisions.save(ctx, s); err != nil {
		return supervision.Supervision{}, err
	}
	return s, nil
}

func (repo *supervisionRepository) QuerySupervisions(ctx context.Context, filter supervision.QueryFilter) ([]supervision.Supervision, error) {
	return repo.supervisions.filter(ctx, filter.Match)
}

func (repo *supervisionRepository) GetSupervision(ctx context.Context, id string) (supervision.Supervision, error) {
	s, err := repo.supervisions.find(ctx, id)
	return s, notFound(err, supervision.ErrNotFound)
}

func (repo *supervisionRepository) DeleteSupervision(ctx context.Context, id string) error {
	n, err := repo.supervisions.delete(ctx, id)
	if err == nil && n == 0 {
		return supervision.ErrNotFound
	}
	return err
}
