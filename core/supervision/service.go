package supervision

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("supervision not found")

type (
	Repository interface {
		CreateSupervision(ctx context.Context, s Supervision) (Supervision, error)
		SaveSupervision(ctx context.Context, s Supervision) (Supervision, error)
		QuerySupervisions(ctx context.Context, filter QueryFilter) ([]Supervision, error)
		GetSupervision(ctx context.Context, id string) (Supervision, error)
		DeleteSupervision(ctx context.Context, id string) error
	}

	Service struct {
		repo     Repository
		validate *validator.Validate
	}
)

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{repo: repo, validate: validate}
}

func (svc *Service) Create(ctx context.Context, ns NewSupervision) (Supervision, error) {
	if err := ns.Validate(svc.validate); err != nil {
		return Supervision{}, err
	}
	s := Supervision{
		ID:           uuid.NewString(),
		StudentID:    ns.StudentID,
		SupervisorID: ns.SupervisorID,
		Status:       ns.Status,
		CreatedAt:    time.Now().UTC(),
	}
	return svc.repo.CreateSupervision(ctx, s)
}

func (svc *Service) Save(ctx context.Context, s Supervision) (Supervision, error) {
	return svc.repo.SaveSupervision(ctx, s)
}

func (svc *Service) SetStatus(ctx context.Context, id string, us UpdateStatus) (Supervision, error) {
	if err := us.Validate(svc.validate); err != nil {
		return Supervision{}, err
	}
	s, err := svc.repo.GetSupervision(ctx, id)
	if err != nil {
		return Supervision{}, err
	}
	s.Status = us.Status
	return svc.repo.SaveSupervision(ctx, s)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Supervision, error) {
	return svc.repo.GetSupervision(ctx, id)
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Supervision, error) {
	return svc.repo.QuerySupervisions(ctx, filter)
}

// StudentsBySupervisor returns the ids of the students actively supervised by supervisorID.
func (svc *Service) StudentsBySupervisor(ctx context.Context, supervisorID string) ([]string, error) {
	return svc.StudentsOf(ctx, supervisorID, true /* activeOnly */)
}

// StudentsOf returns the distinct student ids of supervisorID's supervisions, in partition order.
func (svc *Service) StudentsOf(ctx context.Context, supervisorID string, activeOnly bool) ([]string, error) {
	filter := QueryFilter{SupervisorID: supervisorID}
	if activeOnly {
		filter.Status = StatusActive
	}
	sups, err := svc.repo.QuerySupervisions(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "querying supervisions")
	}
	seen := make(map[string]bool, len(sups))
	ids := make([]string, 0, len(sups))
	for _, s := range sups {
		if !seen[s.StudentID] {
			seen[s.StudentID] = true
			ids = append(ids, s.StudentID)
		}
	}
	return ids, nil
}

// SupervisorsOf returns the ids of the staff actively supervising studentID.
func (svc *Service) SupervisorsOf(ctx context.Context, studentID string) ([]string, error) {
	sups, err := svc.repo.QuerySupervisions(ctx, QueryFilter{StudentID: studentID, Status: StatusActive})
	if err != nil {
		return nil, errors.Wrap(err, "querying supervisions")
	}
	ids := make([]string, 0, len(sups))
	for _, s := range sups {
		ids = append(ids, s.SupervisorID)
	}
	return ids, nil
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteSupervision(ctx, id)
}
