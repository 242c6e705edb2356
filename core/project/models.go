package project

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/unirepo/core"
	"github.com/trezcool/unirepo/core/citation"
)

// Statuses. Any status may follow any other.
const (
	StatusDraft       = "draft"
	StatusSubmitted   = "submitted"
	StatusUnderReview = "under-review"
	StatusApproved    = "approved"
	StatusRejected    = "rejected"
)

var AllStatuses = []string{StatusDraft, StatusSubmitted, StatusUnderReview, StatusApproved, StatusRejected}

func IsValidStatus(status string) bool {
	for _, s := range AllStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type File struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Size       int64     `json:"size"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Project is a student's work, optionally supervised by a staff member.
// Files and Citations are kept for the persisted shape; citations live in their own partition.
type Project struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	StudentID    string              `json:"studentId"`
	SupervisorID null.String         `json:"supervisorId"`
	Status       string              `json:"status"`
	Files        []File              `json:"files"`
	Citations    []citation.Citation `json:"citations"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
	SubmittedAt  null.Time           `json:"submittedAt"`
}

type NewProject struct {
	Title        string `json:"title" validate:"required,notblank"`
	Description  string `json:"description" validate:"required,notblank"`
	SupervisorID string `json:"supervisorId"`
	Status       string `json:"status" validate:"omitempty,projectstatus"`
}

func (np *NewProject) Validate(validate *validator.Validate) error {
	np.Title = core.CleanString(np.Title)
	np.Description = core.CleanString(np.Description)
	np.SupervisorID = core.CleanString(np.SupervisorID)
	np.Status = core.CleanString(np.Status, true /* lower */)
	if np.Status == "" {
		np.Status = StatusDraft
	}
	return validate.Struct(np)
}

// UpdateProject defines what information may be provided to modify an existing Project.
type UpdateProject struct {
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	SupervisorID null.String `json:"supervisorId"`
}

// Validate cleans up and fills the blanks from the original Project.
func (up *UpdateProject) Validate(validate *validator.Validate, orig Project) error {
	if title := core.CleanString(up.Title); title != "" {
		up.Title = title
	} else {
		up.Title = orig.Title
	}
	if desc := core.CleanString(up.Description); desc != "" {
		up.Description = desc
	} else {
		up.Description = orig.Description
	}
	if !up.SupervisorID.Valid {
		up.SupervisorID = orig.SupervisorID
	}
	return validate.Struct(up)
}

type UpdateStatus struct {
	Status string `json:"status" validate:"required,projectstatus"`
}

func (us *UpdateStatus) Validate(validate *validator.Validate) error {
	us.Status = core.CleanString(us.Status, true /* lower */)
	return validate.Struct(us)
}

// QueryFilter applies AND on its non-empty fields.
// Search does a case-insensitive match on one of Project.Title or Project.Description.
type QueryFilter struct {
	Search       string   `query:"search"`
	StudentID    string   `query:"studentId"`
	SupervisorID string   `query:"supervisorId"`
	Status       string   `query:"status"`
	StudentIDs   []string `query:"-"` // nil means any; empty means none
}

func (qf QueryFilter) Match(p Project) bool {
	if qf.Search != "" && !core.ContainsFold(p.Title, qf.Search) && !core.ContainsFold(p.Description, qf.Search) {
		return false
	}
	if qf.StudentID != "" && p.StudentID != qf.StudentID {
		return false
	}
	if qf.SupervisorID != "" && p.SupervisorID.String != qf.SupervisorID {
		return false
	}
	if qf.Status != "" && p.Status != qf.Status {
		return false
	}
	if qf.StudentIDs != nil {
		for _, id := range qf.StudentIDs {
			if id == p.StudentID {
				return true
			}
		}
		return false
	}
	return true
}
