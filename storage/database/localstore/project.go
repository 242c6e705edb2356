package localstore

import (
	"context"

	"github.com/trezcool/unirepo/core"
	"github.com/trezcool/unirepo/core/project"
)

type projectRepository struct {
	db       *DB
	projects collection[project.Project]
}

var _ project.Repository = (*projectRepository)(nil) // interface compliance check

func NewProjectRepository(db *DB) project.Repository {
	return &projectRepository{
		db:       db,
		projects: newCollection(db, core.KeyProjects, func(p project.Project) string { return p.ID }),
	}
}

func (repo *projectRepository) CreateProject(ctx context.Context, p project.Project) (project.Project, error) {
	if err := repo.projects.insert(ctx, p); err != nil {
		return project.Project{}, err
	}
	return p, nil
}

func (repo *projectRepository) SaveProject(ctx context.Context, p project.Project) (project.Project, error) {
	p, err := repo.projects.upsert(ctx, p, func(p *project.Project) { p.UpdatedAt = repo.db.now() })
	if err != nil {
		return project.Project{}, err
	}
	return p, nil
}

func (repo *projectRepository) QueryProjects(ctx context.Context, filter project.QueryFilter) ([]project.Project, error) {
	return repo.projects.filter(ctx, filter.Match)
}

func (repo *projectRepository) GetProject(ctx context.Context, id string) (project.Project, error) {
	p, err := repo.projects.find(ctx, id)
	return p, notFound(err, project.ErrNotFound)
}

func (repo *projectRepository) DeleteProject(ctx context.Context, id string) error {
	n, err := repo.projects.delete(ctx, id)
	if err == nil && n == 0 {
		return project.ErrNotFound
	}
	return err
}
