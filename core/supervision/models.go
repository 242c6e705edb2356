package supervision

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/unirepo/core"
)

// Statuses
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusInactive  = "inactive"
)

var AllStatuses = []string{StatusActive, StatusCompleted, StatusInactive}

func IsValidStatus(status string) bool {
	for _, s := range AllStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Supervision assigns a student to a staff supervisor.
type Supervision struct {
	ID           string    `json:"id"`
	StudentID    string    `json:"studentId"`
	SupervisorID string    `json:"supervisorId"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

type NewSupervision struct {
	StudentID    string `json:"studentId" validate:"required,notblank"`
	SupervisorID string `json:"supervisorId" validate:"required,notblank"`
	Status       string `json:"status" validate:"omitempty,supervisionstatus"`
}

func (ns *NewSupervision) Validate(validate *validator.Validate) error {
	ns.StudentID = core.CleanString(ns.StudentID)
	ns.SupervisorID = core.CleanString(ns.SupervisorID)
	ns.Status = core.CleanString(ns.Status, true /* lower */)
	if ns.Status == "" {
		ns.Status = StatusActive
	}
	return validate.Struct(ns)
}

type UpdateStatus struct {
	Status string `json:"status" validate:"required,supervisionstatus"`
}

func (us *UpdateStatus) Validate(validate *validator.Validate) error {
	us.Status = core.CleanString(us.Status, true /* lower */)
	return validate.Struct(us)
}

// QueryFilter applies AND on its non-empty fields.
type QueryFilter struct {
	StudentID    string `query:"studentId"`
	SupervisorID string `query:"supervisorId"`
	Status       string `query:"status"`
}

func (qf QueryFilter) Match(s Supervision) bool {
	return (qf.StudentID == "" || s.StudentID == qf.StudentID) &&
		(qf.SupervisorID == "" || s.SupervisorID == qf.SupervisorID) &&
		(qf.Status == "" || s.Status == qf.Status)
}
