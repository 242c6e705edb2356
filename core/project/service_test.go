package project_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/unirepo/core/project"
	"github.com/trezcool/unirepo/core/supervision"
	"github.com/trezcool/unirepo/tests"
)

func TestService_Create(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()

	p, err := env.ProjectSvc.Create(ctx, "s1", project.NewProject{Title: " Thesis ", Description: "About things"})
	require.NoError(t, err)
	assert.Equal(t, "Thesis", p.Title)
	assert.Equal(t, "s1", p.StudentID)
	assert.Equal(t, project.StatusDraft, p.Status)
	assert.Empty(t, p.Files)
	assert.NotNil(t, p.Files)
	assert.Empty(t, p.Citations)
	assert.False(t, p.SupervisorID.Valid)
	assert.False(t, p.SubmittedAt.Valid)

	p, err = env.ProjectSvc.Create(ctx, "s1", project.NewProject{Title: "T", Description: "D", Status: "submitted", SupervisorID: "st1"})
	require.NoError(t, err)
	assert.Equal(t, project.StatusSubmitted, p.Status)
	assert.True(t, p.SubmittedAt.Valid)
	assert.Equal(t, "st1", p.SupervisorID.String)

	_, err = env.ProjectSvc.Create(ctx, "s1", project.NewProject{Title: "T", Description: "D", Status: "archived"})
	var vErrs validator.ValidationErrors
	require.ErrorAs(t, err, &vErrs)
	assert.Equal(t, "projectstatus", vErrs[0].Tag())
}

func TestService_SetStatus(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	p := testutil.CreateProject(t, env.ProjectSvc, "s1", "Thesis")

	got, err := env.ProjectSvc.SetStatus(ctx, p.ID, project.UpdateStatus{Status: "Submitted"})
	require.NoError(t, err)
	assert.Equal(t, project.StatusSubmitted, got.Status)
	require.True(t, got.SubmittedAt.Valid)
	submittedAt := got.SubmittedAt.Time

	// resubmitting keeps the first stamp
	got, err = env.ProjectSvc.SetStatus(ctx, p.ID, project.UpdateStatus{Status: project.StatusSubmitted})
	require.NoError(t, err)
	assert.True(t, submittedAt.Equal(got.SubmittedAt.Time))

	// any status may follow any other
	for _, status := range []string{project.StatusApproved, project.StatusDraft, project.StatusRejected, project.StatusUnderReview} {
		got, err = env.ProjectSvc.SetStatus(ctx, p.ID, project.UpdateStatus{Status: status})
		require.NoError(t, err)
		assert.Equal(t, status, got.Status)
	}

	_, err = env.ProjectSvc.SetStatus(ctx, "nope", project.UpdateStatus{Status: project.StatusDraft})
	assert.ErrorIs(t, err, project.ErrNotFound)
}

func TestService_Update(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	p := testutil.CreateProject(t, env.ProjectSvc, "s1", "Thesis")

	got, err := env.ProjectSvc.Update(ctx, p.ID, project.UpdateProject{Description: "New", SupervisorID: null.StringFrom("st1")})
	require.NoError(t, err)
	assert.Equal(t, "Thesis", got.Title)
	assert.Equal(t, "New", got.Description)
	assert.Equal(t, "st1", got.SupervisorID.String)
	assert.False(t, got.UpdatedAt.Before(p.UpdatedAt))

	got, err = env.ProjectSvc.Update(ctx, p.ID, project.UpdateProject{Title: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "st1", got.SupervisorID.String)
}

func TestService_SupervisedBy(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()

	testutil.CreateSupervision(t, env.SupervisionSvc, "s1", "st1", supervision.StatusActive)
	testutil.CreateSupervision(t, env.SupervisionSvc, "s2", "st1", supervision.StatusCompleted)
	p1 := testutil.CreateProject(t, env.ProjectSvc, "s1", "Active")
	testutil.CreateProject(t, env.ProjectSvc, "s2", "Completed")
	p3, err := env.ProjectSvc.Create(ctx, "s3", project.NewProject{Title: "Field", Description: "D", SupervisorID: "st1"})
	require.NoError(t, err)

	got, err := env.ProjectSvc.SupervisedBy(ctx, "st1", project.QueryFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, p1.ID, got[0].ID)

	got, err = env.ProjectSvc.SupervisedBy(ctx, "st2", project.QueryFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = env.ProjectSvc.BySupervisor(ctx, "st1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, p3.ID, got[0].ID)

	got, err = env.ProjectSvc.ByStudent(ctx, "s2")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
