package citation

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/unirepo/core"
)

// Citation links a Material to the Project that cites it.
// Neither id is checked against its partition; dangling references are tolerated.
type Citation struct {
	ID              string      `json:"id"`
	MaterialID      string      `json:"materialId"`
	ProjectID       string      `json:"projectId"`
	StudentID       string      `json:"studentId"`
	IsValidated     bool        `json:"isValidated"`
	ValidatedBy     null.String `json:"validatedBy"`
	ValidationNotes null.String `json:"validationNotes"`
	CreatedAt       time.Time   `json:"createdAt"`
}

type NewCitation struct {
	MaterialID string `json:"materialId" validate:"required,notblank"`
	ProjectID  string `json:"projectId" validate:"required,notblank"`
}

func (nc *NewCitation) Validate(validate *validator.Validate) error {
	nc.MaterialID = core.CleanString(nc.MaterialID)
	nc.ProjectID = core.CleanString(nc.ProjectID)
	return validate.Struct(nc)
}

// Review is a supervisor's verdict on a Citation.
type Review struct {
	IsValidated     bool   `json:"isValidated"`
	ValidationNotes string `json:"validationNotes" validate:"max=2000"`
}

func (r *Review) Validate(validate *validator.Validate) error {
	r.ValidationNotes = core.CleanString(r.ValidationNotes)
	return validate.Struct(r)
}

// QueryFilter applies AND on its non-empty fields.
type QueryFilter struct {
	ProjectID   string   `query:"projectId"`
	StudentID   string   `query:"studentId"`
	MaterialID  string   `query:"materialId"`
	IsValidated *bool    `query:"-"` // nil means any
	StudentIDs  []string `query:"-"` // nil means any; empty means none
}

func (qf QueryFilter) Match(c Citation) bool {
	if qf.ProjectID != "" && c.ProjectID != qf.ProjectID {
		return false
	}
	if qf.StudentID != "" && c.StudentID != qf.StudentID {
		return false
	}
	if qf.MaterialID != "" && c.MaterialID != qf.MaterialID {
		return false
	}
	if qf.IsValidated != nil && c.IsValidated != *qf.IsValidated {
		return false
	}
	if qf.StudentIDs != nil {
		found := false
		for _, id := range qf.StudentIDs {
			if id == c.StudentID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
