package citation_test

import (
	"context"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/unirepo/core/citation"
	"github.com/trezcool/unirepo/core/supervision"
	"github.com/trezcool/unirepo/tests"
)

func createCitation(t *testing.T, svc *citation.Service, studentID, materialID, projectID string) citation.Citation {
	t.Helper()
	c, err := svc.Create(context.Background(), studentID, citation.NewCitation{MaterialID: materialID, ProjectID: projectID})
	require.NoError(t, err)
	return c
}

func TestService_Create(t *testing.T) {
	env := testutil.NewEnv(t)

	c := createCitation(t, env.CitationSvc, "s1", " m1 ", "p1")
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "m1", c.MaterialID)
	assert.Equal(t, "s1", c.StudentID)
	assert.False(t, c.IsValidated)
	assert.False(t, c.ValidatedBy.Valid)

	_, err := env.CitationSvc.Create(context.Background(), "s1", citation.NewCitation{ProjectID: "p1"})
	var vErrs validator.ValidationErrors
	require.ErrorAs(t, err, &vErrs)
	assert.Equal(t, "materialId", vErrs[0].Field())
}

func TestService_Validate(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	c := createCitation(t, env.CitationSvc, "s1", "m1", "p1")

	got, err := env.CitationSvc.Validate(ctx, c.ID, "st1", citation.Review{IsValidated: true, ValidationNotes: " Solid source "})
	require.NoError(t, err)
	assert.True(t, got.IsValidated)
	assert.Equal(t, "st1", got.ValidatedBy.String)
	assert.Equal(t, "Solid source", got.ValidationNotes.String)

	got, err = env.CitationSvc.Validate(ctx, c.ID, "st2", citation.Review{})
	require.NoError(t, err)
	assert.False(t, got.IsValidated)
	assert.Equal(t, "st2", got.ValidatedBy.String)
	assert.False(t, got.ValidationNotes.Valid)

	_, err = env.CitationSvc.Validate(ctx, c.ID, "st1", citation.Review{ValidationNotes: strings.Repeat("x", 2001)})
	var vErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &vErrs)

	_, err = env.CitationSvc.Validate(ctx, "nope", "st1", citation.Review{IsValidated: true})
	assert.ErrorIs(t, err, citation.ErrNotFound)
}

func TestService_BySupervisor(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()

	testutil.CreateSupervision(t, env.SupervisionSvc, "s1", "st1", supervision.StatusActive)
	testutil.CreateSupervision(t, env.SupervisionSvc, "s2", "st1", supervision.StatusCompleted)
	c1 := createCitation(t, env.CitationSvc, "s1", "m1", "p1")
	c2 := createCitation(t, env.CitationSvc, "s2", "m1", "p2")
	createCitation(t, env.CitationSvc, "s3", "m1", "p3")

	got, err := env.CitationSvc.BySupervisor(ctx, "st1", citation.QueryFilter{})
	require.NoError(t, err)
	ids := make([]string, 0, len(got))
	for _, c := range got {
		ids = append(ids, c.ID)
	}
	assert.ElementsMatch(t, []string{c1.ID, c2.ID}, ids)

	_, err = env.CitationSvc.Validate(ctx, c2.ID, "st1", citation.Review{IsValidated: true})
	require.NoError(t, err)
	validated := true
	got, err = env.CitationSvc.BySupervisor(ctx, "st1", citation.QueryFilter{IsValidated: &validated})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, c2.ID, got[0].ID)

	got, err = env.CitationSvc.BySupervisor(ctx, "nobody", citation.QueryFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = env.CitationSvc.ByProject(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, c1.ID, got[0].ID)

	require.NoError(t, env.CitationSvc.Delete(ctx, c1.ID))
	assert.ErrorIs(t, env.CitationSvc.Delete(ctx, c1.ID), citation.ErrNotFound)
}
