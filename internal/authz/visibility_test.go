package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleUsers(t *testing.T) {
	assert.True(t, VisibleUsers(Identity{1, RoleSuperAdmin}).All)

	admin := VisibleUsers(Identity{2, RoleAdmin})
	assert.False(t, admin.All)
	assert.ElementsMatch(t, []string{"admin", "editor", "viewer"}, admin.RoleNames)
	assert.Zero(t, admin.SelfID)

	editor := VisibleUsers(Identity{3, RoleEditor})
	assert.ElementsMatch(t, []string{"editor", "viewer"}, editor.RoleNames)
	assert.Zero(t, editor.SelfID)

	viewer := VisibleUsers(Identity{4, RoleViewer})
	assert.ElementsMatch(t, []string{"viewer"}, viewer.RoleNames)
	assert.EqualValues(t, 4, viewer.SelfID)
}

func TestVisibleMovies(t *testing.T) {
	assert.True(t, VisibleMovies(Identity{1, RoleSuperAdmin}).All)

	admin := VisibleMovies(Identity{2, RoleAdmin})
	assert.EqualValues(t, 2, admin.AssignedTo)
	assert.True(t, admin.AnyNonSuperAdminCreator)

	editor := VisibleMovies(Identity{3, RoleEditor})
	assert.EqualValues(t, 3, editor.AssignedTo)
	assert.False(t, editor.AnyNonSuperAdminCreator)

	viewer := VisibleMovies(Identity{4, RoleViewer})
	assert.EqualValues(t, 4, viewer.AssignedTo)
	assert.False(t, viewer.AnyNonSuperAdminCreator)
}

func TestVisibleAssignments(t *testing.T) {
	assert.True(t, VisibleAssignments(Identity{1, RoleSuperAdmin}).All)

	admin := VisibleAssignments(Identity{2, RoleAdmin})
	assert.EqualValues(t, 2, admin.AdminID)
	assert.Zero(t, admin.AssigneeID)

	editor := VisibleAssignments(Identity{3, RoleEditor})
	assert.EqualValues(t, 3, editor.AssigneeID)
	assert.Zero(t, editor.AdminID)
}
