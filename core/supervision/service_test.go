package supervision_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/unirepo/core/supervision"
	"github.com/trezcool/unirepo/tests"
)

func TestService_Create(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()

	s, err := env.SupervisionSvc.Create(ctx, supervision.NewSupervision{StudentID: "s1", SupervisorID: "st1"})
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, supervision.StatusActive, s.Status)

	tests := []struct {
		name    string
		ns      supervision.NewSupervision
		wantTag string
	}{
		{name: "missing student", ns: supervision.NewSupervision{SupervisorID: "st1"}, wantTag: "required"},
		{name: "invalid status", ns: supervision.NewSupervision{StudentID: "s1", SupervisorID: "st1", Status: "paused"}, wantTag: "supervisionstatus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.SupervisionSvc.Create(ctx, tt.ns)
			var vErrs validator.ValidationErrors
			require.ErrorAs(t, err, &vErrs)
			assert.Equal(t, tt.wantTag, vErrs[0].Tag())
		})
	}
}

func TestService_SetStatus(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	s := testutil.CreateSupervision(t, env.SupervisionSvc, "s1", "st1", supervision.StatusActive)

	got, err := env.SupervisionSvc.SetStatus(ctx, s.ID, supervision.UpdateStatus{Status: " Completed "})
	require.NoError(t, err)
	assert.Equal(t, supervision.StatusCompleted, got.Status)

	_, err = env.SupervisionSvc.SetStatus(ctx, "nope", supervision.UpdateStatus{Status: supervision.StatusInactive})
	assert.ErrorIs(t, err, supervision.ErrNotFound)
}

func TestService_joins(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	svc := env.SupervisionSvc

	testutil.CreateSupervision(t, svc, "s1", "st1", supervision.StatusActive)
	testutil.CreateSupervision(t, svc, "s2", "st1", supervision.StatusCompleted)
	testutil.CreateSupervision(t, svc, "s1", "st2", supervision.StatusActive)
	testutil.CreateSupervision(t, svc, "s1", "st1", supervision.StatusInactive) // duplicate pair
	testutil.CreateSupervision(t, svc, "s3", "st2", supervision.StatusInactive)

	active, err := svc.StudentsBySupervisor(ctx, "st1")
	require.NoError(t, err)
	assert.Equal(t, []string{"s1"}, active)

	all, err := svc.StudentsOf(ctx, "st1", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2"}, all)

	none, err := svc.StudentsOf(ctx, "st3", false)
	require.NoError(t, err)
	assert.Empty(t, none)

	sups, err := svc.SupervisorsOf(ctx, "s1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"st1", "st2"}, sups)

	sups, err = svc.SupervisorsOf(ctx, "s3")
	require.NoError(t, err)
	assert.Empty(t, sups)

	listed, err := svc.Filter(ctx, supervision.QueryFilter{StudentID: "s1", Status: supervision.StatusActive})
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}
