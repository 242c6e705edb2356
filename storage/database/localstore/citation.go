package localstore

import (
	"context"

	"github.com/trezcool/unirepo/core"
	"github.com/trezcool/unirepo/core/citation"
)

type citationRepository struct {
	citations collection[citation.Citation]
}

var _ citation.Repository = (*citationRepository)(nil) // interface compliance check

func NewCitationRepository(db *DB) citation.Repository {
	return &citationRepository{
		citations: newCollection(db, core.KeyCitations, func(c citation.Citation) string { return c.ID }),
	}
}

func (repo *citationRepository) CreateCitation(ctx context.Context, c citation.Citation) (citation.Citation, error) {
	if err := repo.citations.insert(ctx, c); err != nil {
		return citation.Citation{}, err
	}
	return c, nil
}

func (repo *citationRepository) SaveCitation(ctx context.Context, c citation.Citation) (citation.Citation, error) {
	if err := repo.citations.save(ctx, c); err != nil {
		return citation.Citation{}, err
	}
	return c, nil
}

func (repo *citationRepository) QueryCitations(ctx context.Context, filter citation.QueryFilter) ([]citation.Citation, error) {
	return repo.citations.filter(ctx, filter.Match)
}

func (repo *citationRepository) GetCitation(ctx context.Context, id string) (citation.Citation, error) {
	c, err := repo.citations.find(ctx, id)
	return c, notFound(err, citation.ErrNotFound)
}

func (repo *citationRepository) DeleteCitation(ctx context.Context, id string) error {
	n, err := repo.citations.delete(ctx, id)
	if err == nil && n == 0 {
		return citation.ErrNotFound
	}
	return err
}
