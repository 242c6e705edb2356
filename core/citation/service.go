package citation

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
)

var ErrNotFound = errors.New("citation not found")

type (
	Repository interface {
		CreateCitation(ctx context.Context, c Citation) (Citation, error)
		SaveCitation(ctx context.Context, c Citation) (Citation, error)
		QueryCitations(ctx context.Context, filter QueryFilter) ([]Citation, error)
		GetCitation(ctx context.Context, id string) (Citation, error)
		DeleteCitation(ctx context.Context, id string) error
	}

	// SupervisedStudents resolves the students a staff member supervises.
	SupervisedStudents interface {
		StudentsOf(ctx context.Context, supervisorID string, activeOnly bool) ([]string, error)
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

// Create stores a new unvalidated Citation made by studentID.
func (svc *Service) Create(ctx context.Context, studentID string, nc NewCitation) (Citation, error) {
	if err := nc.Validate(svc.validate); err != nil {
		return Citation{}, err
	}
	c := Citation{
		ID:         uuid.NewString(),
		MaterialID: nc.MaterialID,
		ProjectID:  nc.ProjectID,
		StudentID:  studentID,
		CreatedAt:  time.Now().UTC(),
	}
	return svc.repo.CreateCitation(ctx, c)
}

func (svc *Service) Save(ctx context.Context, c Citation) (Citation, error) {
	return svc.repo.SaveCitation(ctx, c)
}

// Validate records the verdict of reviewerID on the Citation.
func (svc *Service) Validate(ctx context.Context, id, reviewerID string, r Review) (Citation, error) {
	if err := r.Validate(svc.validate); err != nil {
		return Citation{}, err
	}
	c, err := svc.repo.GetCitation(ctx, id)
	if err != nil {
		return Citation{}, err
	}
	c.IsValidated = r.IsValidated
	c.ValidatedBy = null.StringFrom(reviewerID)
	c.ValidationNotes = null.NewString(r.ValidationNotes, r.ValidationNotes != "")
	return svc.repo.SaveCitation(ctx, c)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Citation, error) {
	return svc.repo.GetCitation(ctx, id)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Citation, error) {
	return svc.repo.QueryCitations(ctx, QueryFilter{})
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Citation, error) {
	return svc.repo.QueryCitations(ctx, filter)
}

func (svc *Service) ByProject(ctx context.Context, projectID string) ([]Citation, error) {
	return svc.repo.QueryCitations(ctx, QueryFilter{ProjectID: projectID})
}

// BySupervisor returns the citations of every student the staff member has ever supervised,
// whatever the supervision status.
func (svc *Service) BySupervisor(ctx context.Context, supervisorID string, filter QueryFilter) ([]Citation, error) {
	ids, err := svc.supervision.StudentsOf(ctx, supervisorID, false /* activeOnly */)
	if err != nil {
		return nil, errors.Wrap(err, "finding supervised students")
	}
	if ids == nil {
		ids = []string{}
	}
	filter.StudentIDs = ids
	return svc.repo.QueryCitations(ctx, filter)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteCitation(ctx, id)
}
