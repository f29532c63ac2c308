package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movievault/internal/authz"
	"movievault/internal/models"
)

// End-to-end decision scenarios: the stores supply the facts, the pure
// decision procedure rules on them.

func factsFor(t *testing.T, movies *MovieStore, assignments *AssignmentStore, ident authz.Identity, movieID int64) authz.MovieFacts {
	t.Helper()
	movie, err := movies.ByID(ctx(), movieID)
	require.NoError(t, err)
	assigned, err := assignments.IsAssigned(ctx(), movie.ID, ident.UserID)
	require.NoError(t, err)
	facts := authz.MovieFacts{CreatedBy: movie.CreatedBy, Assigned: assigned}
	if movie.Creator != nil && movie.Creator.Role != nil {
		facts.CreatorRole = authz.Role(movie.Creator.Role.Name)
	}
	return facts
}

func TestEditorGainsAccessThroughAssignment(t *testing.T) {
	gdb := openTestDB(t)
	movies := NewMovieStore(gdb)
	assignments := NewAssignmentStore(gdb)

	admin := createUser(t, gdb, "adminA", authz.RoleAdmin)
	editor := createUser(t, gdb, "editorE", authz.RoleEditor)
	editorIdent := identOf(editor)

	m := models.Movie{Title: "M"}
	require.NoError(t, movies.Create(ctx(), &m, identOf(admin)))

	// not assigned: everything denied
	facts := factsFor(t, movies, assignments, editorIdent, m.ID)
	assert.True(t, authz.IsDenied(authz.CanReadMovie(editorIdent, facts)))
	assert.True(t, authz.IsDenied(authz.CanFileAction(editorIdent, authz.FileUpload, facts)))

	require.NoError(t, assignments.Assign(ctx(), m.ID, editor.ID, admin.ID))

	// assigned: read and file access open up, update/delete stay closed
	facts = factsFor(t, movies, assignments, editorIdent, m.ID)
	assert.NoError(t, authz.CanReadMovie(editorIdent, facts))
	assert.NoError(t, authz.CanFileAction(editorIdent, authz.FileUpload, facts))
	assert.NoError(t, authz.CanFileAction(editorIdent, authz.FileDownload, facts))
	assert.True(t, authz.IsDenied(authz.CanMutateMovie(editorIdent, facts)))
}

func TestAdminNeedsAssignmentOnSuperAdminMovie(t *testing.T) {
	gdb := openTestDB(t)
	movies := NewMovieStore(gdb)
	assignments := NewAssignmentStore(gdb)

	super := createUser(t, gdb, "rootS", authz.RoleSuperAdmin)
	admin := createUser(t, gdb, "adminA2", authz.RoleAdmin)
	adminIdent := identOf(admin)

	m2 := models.Movie{Title: "M2"}
	require.NoError(t, movies.Create(ctx(), &m2, identOf(super)))

	facts := factsFor(t, movies, assignments, adminIdent, m2.ID)
	assert.True(t, authz.IsDenied(authz.CanMutateMovie(adminIdent, facts)))

	require.NoError(t, assignments.Assign(ctx(), m2.ID, admin.ID, super.ID))

	facts = factsFor(t, movies, assignments, adminIdent, m2.ID)
	require.NoError(t, authz.CanMutateMovie(adminIdent, facts))

	_, err := movies.Delete(ctx(), m2.ID)
	require.NoError(t, err)
	_, err = movies.ByID(ctx(), m2.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
