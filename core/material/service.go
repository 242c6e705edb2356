package material

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
)

var ErrNotFound = errors.New("material not found")

type (
	Repository interface {
		CreateMaterial(ctx context.Context, m Material) (Material, error)
		SaveMaterial(ctx context.Context, m Material) (Material, error)
		QueryMaterials(ctx context.Context, filter QueryFilter) ([]Material, error)
		GetMaterial(ctx context.Context, id string) (Material, error)
		// IncrementDownload adds one to the downloads of the Material and returns it.
		// It fails with ErrNotFound, writing nothing, when id is unknown.
		IncrementDownload(ctx context.Context, id string) (Material, error)
		DeleteMaterial(ctx context.Context, id string) error
	}

	Service struct {
		repo     Repository
		validate *validator.Validate
	}
)

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{repo: repo, validate: validate}
}

// Create adds a new Material uploaded by uploadedBy to the catalog.
func (svc *Service) Create(ctx context.Context, uploadedBy string, nm NewMaterial) (Material, error) {
	if err := nm.Validate(svc.validate); err != nil {
		return Material{}, err
	}
	m := Material{
		ID:          uuid.NewString(),
		Title:       nm.Title,
		Author:      nm.Author,
		Type:        nm.Type,
		Year:        nm.Year,
		Description: nm.Description,
		Keywords:    nm.Keywords,
		FileURL:     null.NewString(nm.FileURL, nm.FileURL != ""),
		UploadedBy:  uploadedBy,
		CreatedAt:   time.Now().UTC(),
	}
	return svc.repo.CreateMaterial(ctx, m)
}

func (svc *Service) Save(ctx context.Context, m Material) (Material, error) {
	return svc.repo.SaveMaterial(ctx, m)
}

func (svc *Service) Update(ctx context.Context, id string, um UpdateMaterial) (Material, error) {
	m, err := svc.repo.GetMaterial(ctx, id)
	if err != nil {
		return Material{}, err
	}
	if err = um.Validate(svc.validate, m); err != nil {
		return Material{}, err
	}
	m.Title = um.Title
	m.Author = um.Author
	m.Type = um.Type
	m.Year = um.Year
	m.Description = um.Description
	m.Keywords = um.Keywords
	m.FileURL = null.NewString(um.FileURL, um.FileURL != "")
	return svc.repo.SaveMaterial(ctx, m)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Material, error) {
	return svc.repo.GetMaterial(ctx, id)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Material, error) {
	return svc.repo.QueryMaterials(ctx, QueryFilter{})
}

// Search returns the materials matching query, see Material.Matches.
func (svc *Service) Search(ctx context.Context, query string) ([]Material, error) {
	return svc.Filter(ctx, QueryFilter{Search: query})
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Material, error) {
	filter.Clean()
	return svc.repo.QueryMaterials(ctx, filter)
}

func (svc *Service) IncrementDownload(ctx context.Context, id string) (Material, error) {
	return svc.repo.IncrementDownload(ctx, id)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteMaterial(ctx, id)
}
