package project

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/unirepo/core/citation"
)

var ErrNotFound = errors.New("project not found")

type (
	Repository interface {
		CreateProject(ctx context.Context, p Project) (Project, error)
		// SaveProject replaces the project with the same ID, refreshing UpdatedAt, or appends it.
		SaveProject(ctx context.Context, p Project) (Project, error)
		QueryProjects(ctx context.Context, filter QueryFilter) ([]Project, error)
		GetProject(ctx context.Context, id string) (Project, error)
		DeleteProject(ctx context.Context, id string) error
	}

	// SupervisedStudents resolves the students a staff member actively supervises.
	SupervisedStudents interface {
		StudentsBySupervisor(ctx context.Context, supervisorID string) ([]string, error)
	}

	Service struct {
		repo        Repository
		supervision SupervisedStudents
		validate    *validator.Validate
	}
)

func NewService(repo Repository, supervision SupervisedStudents, validate *validator.Validate) *Service {
	return &Service{repo: repo, supervision: supervision, validate: validate}
}

// Create stores a new Project owned by studentID, with no files and no citations.
func (svc *Service) Create(ctx context.Context, studentID string, np NewProject) (Project, error) {
	if err := np.Validate(svc.validate); err != nil {
		return Project{}, err
	}
	now := time.Now().UTC()
	p := Project{
		ID:           uuid.NewString(),
		Title:        np.Title,
		Description:  np.Description,
		StudentID:    studentID,
		SupervisorID: null.NewString(np.SupervisorID, np.SupervisorID != ""),
		Status:       np.Status,
		Files:        []File{},
		Citations:    []citation.Citation{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if p.Status == StatusSubmitted {
		p.SubmittedAt = null.TimeFrom(now)
	}
	return svc.repo.CreateProject(ctx, p)
}

func (svc *Service) Save(ctx context.Context, p Project) (Project, error) {
	return svc.repo.SaveProject(ctx, p)
}

func (svc *Service) Update(ctx context.Context, id string, up UpdateProject) (Project, error) {
	p, err := svc.repo.GetProject(ctx, id)
	if err != nil {
		return Project{}, err
	}
	if err = up.Validate(svc.validate, p); err != nil {
		return Project{}, err
	}
	p.Title = up.Title
	p.Description = up.Description
	p.SupervisorID = up.SupervisorID
	return svc.repo.SaveProject(ctx, p)
}

// SetStatus moves the Project to a new status. Moving to submitted stamps SubmittedAt.
func (svc *Service) SetStatus(ctx context.Context, id string, us UpdateStatus) (Project, error) {
	if err := us.Validate(svc.validate); err != nil {
		return Project{}, err
	}
	p, err := svc.repo.GetProject(ctx, id)
	if err != nil {
		return Project{}, err
	}
	if us.Status == StatusSubmitted && p.Status != StatusSubmitted {
		p.SubmittedAt = null.TimeFrom(time.Now().UTC())
	}
	p.Status = us.Status
	return svc.repo.SaveProject(ctx, p)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Project, error) {
	return svc.repo.GetProject(ctx, id)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Project, error) {
	return svc.repo.QueryProjects(ctx, QueryFilter{})
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Project, error) {
	return svc.repo.QueryProjects(ctx, filter)
}

func (svc *Service) ByStudent(ctx context.Context, studentID string) ([]Project, error) {
	return svc.repo.QueryProjects(ctx, QueryFilter{StudentID: studentID})
}

// BySupervisor returns the projects whose supervisorId field is supervisorID.
func (svc *Service) BySupervisor(ctx context.Context, supervisorID string) ([]Project, error) {
	return svc.repo.QueryProjects(ctx, QueryFilter{SupervisorID: supervisorID})
}

// SupervisedBy returns the projects of every student actively supervised by supervisorID.
func (svc *Service) SupervisedBy(ctx context.Context, supervisorID string, filter QueryFilter) ([]Project, error) {
	ids, err := svc.supervision.StudentsBySupervisor(ctx, supervisorID)
	if err != nil {
		return nil, errors.Wrap(err, "finding supervised students")
	}
	if ids == nil {
		ids = []string{}
	}
	filter.StudentIDs = ids
	return svc.repo.QueryProjects(ctx, filter)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteProject(ctx, id)
}
