package localstore

import (
	"context"

	"github.com/trezcool/unirepo/core"
	"github.com/trezcool/unirepo/core/material"
)

type materialRepository struct {
	materials collection[material.Material]
}

var _ material.Repository = (*materialRepository)(nil) // interface compliance check

func NewMaterialRepository(db *DB) material.Repository {
	return &materialRepository{
		materials: newCollection(db, core.KeyMaterials, func(m material.Material) string { return m.ID }),
	}
}

func (repo *materialRepository) CreateMaterial(ctx context.Context, m material.Material) (material.Material, error) {
	if err := repo.materials.insert(ctx, m); err != nil {
		return material.Material{}, err
	}
	return m, nil
}

func (repo *materialRepository) SaveMaterial(ctx context.Context, m material.Material) (material.Material, error) {
	if err := repo.materials.save(ctx, m); err != nil {
		return material.Material{}, err
	}
	return m, nil
}

func (repo *materialRepository) QueryMaterials(ctx context.Context, filter material.QueryFilter) ([]material.Material, error) {
	return repo.materials.filter(ctx, filter.Match)
}

func (repo *materialRepository) GetMaterial(ctx context.Context, id string) (material.Material, error) {
	m, err := repo.materials.find(ctx, id)
	return m, notFound(err, material.ErrNotFound)
}

func (repo *materialRepository) IncrementDownload(ctx context.Context, id string) (material.Material, error) {
	m, err := repo.materials.update(ctx, id, func(m *material.Material) error {
		m.Downloads++
		return nil
	})
	return m, notFound(err, material.ErrNotFound)
}

func (repo *materialRepository) DeleteMaterial(ctx context.Context, id string) error {
	n, err := repo.materials.delete(ctx, id)
	if err == nil && n == 0 {
		return material.ErrNotFound
	}
	return err
}
