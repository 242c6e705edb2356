// Package seed fills empty partitions with the demo catalog.
package seed

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/unirepo/core"
	"github.com/trezcool/unirepo/core/citation"
	"github.com/trezcool/unirepo/core/material"
	"github.com/trezcool/unirepo/core/project"
	"github.com/trezcool/unirepo/core/supervision"
	"github.com/trezcool/unirepo/core/user"
)

type (
	// Partitions tells whether a partition holds any record.
	Partitions interface {
		IsEmpty(ctx context.Context, key string) (bool, error)
	}

	Repositories struct {
		Users        user.Repository
		Materials    material.Repository
		Projects     project.Repository
		Citations    citation.Repository
		Supervisions supervision.Repository
	}

	// Report holds the number of records inserted per partition.
	Report struct {
		Users        int `json:"users"`
		Materials    int `json:"materials"`
		Projects     int `json:"projects"`
		Citations    int `json:"citations"`
		Supervisions int `json:"supervisions"`
	}

	Seeder struct {
		partitions Partitions
		repos      Repositories
		logger     core.Logger
		now        func() time.Time
	}
)

func NewSeeder(partitions Partitions, repos Repositories, logger core.Logger) *Seeder {
	return &Seeder{
		partitions: partitions,
		repos:      repos,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Total returns the number of records inserted.
func (r Report) Total() int {
	return r.Users + r.Materials + r.Projects + r.Citations + r.Supervisions
}

// Run seeds every empty partition. Partitions holding records are left untouched, so running it
// twice inserts nothing the second time.
func (s *Seeder) Run(ctx context.Context) (Report, error) {
	var rep Report
	steps := []struct {
		key   string
		seed  func(context.Context) (int, error)
		count *int
	}{
		{key: core.KeyUsers, seed: s.seedUsers, count: &rep.Users},
		{key: core.KeyMaterials, seed: s.seedMaterials, count: &rep.Materials},
		{key: core.KeyProjects, seed: s.seedProjects, count: &rep.Projects},
		{key: core.KeyCitations, seed: s.seedCitations, count: &rep.Citations},
		{key: core.KeySupervisions, seed: s.seedSupervisions, count: &rep.Supervisions},
	}

	for _, step := range steps {
		empty, err := s.partitions.IsEmpty(ctx, step.key)
		if err != nil {
			return rep, errors.Wrapf(err, "checking %s", step.key)
		}
		if !empty {
			continue
		}
		if *step.count, err = step.seed(ctx); err != nil {
			return rep, errors.Wrapf(err, "seeding %s", step.key)
		}
		s.logger.Info("partition seeded", map[string]interface{}{"partition": step.key, "count": *step.count})
	}
	return rep, nil
}

func (s *Seeder) seedUsers(ctx context.Context) (int, error) {
	for i, e := range demoUsers {
		usr := user.User{
			ID:         e.id,
			Email:      e.email,
			Name:       e.name,
			Role:       e.role,
			Department: null.NewString(e.department, e.department != ""),
			StudentID:  null.NewString(e.studentID, e.studentID != ""),
			StaffID:    null.NewString(e.staffID, e.staffID != ""),
			CreatedAt:  s.now(),
		}
		if err := usr.SetPassword(DemoPassword); err != nil {
			return i, errors.Wrap(err, "hashing password")
		}
		if _, err := s.repos.Users.CreateUser(ctx, usr); err != nil {
			return i, err
		}
	}
	return len(demoUsers), nil
}

func (s *Seeder) seedMaterials(ctx context.Context) (int, error) {
	for i, m := range Catalog() {
		m.CreatedAt = s.now()
		if _, err := s.repos.Materials.CreateMaterial(ctx, m); err != nil {
			return i, err
		}
	}
	return len(catalog), nil
}

func (s *Seeder) seedProjects(ctx context.Context) (int, error) {
	for i, e := range demoProjects {
		now := s.now()
		p := project.Project{
			ID:           uuid.NewString(),
			Title:        e.title,
			Description:  e.description,
			StudentID:    demoUsers[0].id,
			SupervisorID: null.StringFrom(demoUsers[1].id),
			Status:       e.status,
			Files:        []project.File{},
			Citations:    []citation.Citation{},
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if _, err := s.repos.Projects.CreateProject(ctx, p); err != nil {
			return i, err
		}
	}
	return len(demoProjects), nil
}

// seedCitations points the demo citations at the first projects of the partition, falling back to
// "1", "2"... when there are fewer projects than needed.
func (s *Seeder) seedCitations(ctx context.Context) (int, error) {
	projects, err := s.repos.Projects.QueryProjects(ctx, project.QueryFilter{})
	if err != nil {
		return 0, errors.Wrap(err, "querying projects")
	}

	for i, e := range demoCitations {
		projectID := strconv.Itoa(e.projectIdx + 1)
		if e.projectIdx < len(projects) {
			projectID = projects[e.projectIdx].ID
		}
		c := citation.Citation{
			ID:              uuid.NewString(),
			MaterialID:      e.materialID,
			ProjectID:       projectID,
			StudentID:       demoUsers[0].id,
			IsValidated:     e.isValidated,
			ValidatedBy:     null.NewString(e.validatedBy, e.validatedBy != ""),
			ValidationNotes: null.NewString(e.validationNotes, e.validationNotes != ""),
			CreatedAt:       s.now(),
		}
		if _, err = s.repos.Citations.CreateCitation(ctx, c); err != nil {
			return i, err
		}
	}
	return len(demoCitations), nil
}

func (s *Seeder) seedSupervisions(ctx context.Context) (int, error) {
	for i, e := range demoSupervisions {
		sup := supervision.Supervision{
			ID:           uuid.NewString(),
			StudentID:    e.studentID,
			SupervisorID: e.supervisorID,
			Status:       e.status,
			CreatedAt:    s.now(),
		}
		if _, err := s.repos.Supervisions.CreateSupervision(ctx, sup); err != nil {
			return i, err
		}
	}
	return len(demoSupervisions), nil
}

// Catalog returns the demo materials, ids "1" to "52".
func Catalog() []material.Material {
	materials := make([]material.Material, 0, len(catalog))
	for _, e := range catalog {
		materials = append(materials, material.Material{
			ID:          e.id,
			Title:       e.title,
			Author:      e.author,
			Type:        e.typ,
			Year:        e.year,
			Description: e.description,
			Keywords:    append([]string(nil), e.keywords...),
			UploadedBy:  e.uploadedBy,
			Downloads:   e.downloads,
		})
	}
	return materials
}
