package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allRoles = []Role{RoleSuperAdmin, RoleAdmin, RoleEditor, RoleViewer}

func TestCanViewUser(t *testing.T) {
	self := Identity{UserID: 10, Role: RoleViewer}

	cases := []struct {
		name       string
		ident      Identity
		targetID   int64
		targetRole Role
		allow      bool
	}{
		{"super admin sees super admin", Identity{1, RoleSuperAdmin}, 2, RoleSuperAdmin, true},
		{"super admin sees viewer", Identity{1, RoleSuperAdmin}, 2, RoleViewer, true},
		{"admin sees admin", Identity{1, RoleAdmin}, 2, RoleAdmin, true},
		{"admin sees editor", Identity{1, RoleAdmin}, 2, RoleEditor, true},
		{"admin blocked from super admin", Identity{1, RoleAdmin}, 2, RoleSuperAdmin, false},
		{"editor sees viewer", Identity{1, RoleEditor}, 2, RoleViewer, true},
		{"editor sees editor", Identity{1, RoleEditor}, 2, RoleEditor, true},
		{"editor blocked from admin", Identity{1, RoleEditor}, 2, RoleAdmin, false},
		{"editor blocked from super admin", Identity{1, RoleEditor}, 2, RoleSuperAdmin, false},
		{"viewer sees own record", self, 10, RoleViewer, true},
		{"viewer blocked from other viewer", self, 11, RoleViewer, false},
		{"viewer blocked from editor", self, 10, RoleEditor, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanViewUser(tc.ident, tc.targetID, tc.targetRole)
			if tc.allow {
				assert.NoError(t, err)
			} else {
				assert.True(t, IsDenied(err), "expected denial, got %v", err)
			}
		})
	}
}

func TestCanMutateUser(t *testing.T) {
	for _, target := range allRoles {
		assert.NoError(t, CanMutateUser(Identity{1, RoleSuperAdmin}, target))
	}
	assert.NoError(t, CanMutateUser(Identity{1, RoleAdmin}, RoleAdmin))
	assert.NoError(t, CanMutateUser(Identity{1, RoleAdmin}, RoleEditor))
	assert.NoError(t, CanMutateUser(Identity{1, RoleAdmin}, RoleViewer))
	assert.True(t, IsDenied(CanMutateUser(Identity{1, RoleAdmin}, RoleSuperAdmin)))
	for _, target := range allRoles {
		assert.True(t, IsDenied(CanMutateUser(Identity{1, RoleEditor}, target)))
		assert.True(t, IsDenied(CanMutateUser(Identity{1, RoleViewer}, target)))
	}
}

func TestCanCreateMovie(t *testing.T) {
	assert.NoError(t, CanCreateMovie(Identity{1, RoleSuperAdmin}))
	assert.NoError(t, CanCreateMovie(Identity{1, RoleAdmin}))
	assert.True(t, IsDenied(CanCreateMovie(Identity{1, RoleEditor})))
	assert.True(t, IsDenied(CanCreateMovie(Identity{1, RoleViewer})))
	assert.ErrorIs(t, CanCreateMovie(Identity{1, Role("bogus")}), ErrInvalidRole)
}

// Full enumeration of {role} x {creator role} x {assigned?} against the
// read/mutate rule tables.
func TestMovieDecisionTable(t *testing.T) {
	type row struct {
		role        Role
		creatorRole Role
		assigned    bool
		read        bool
		mutate      bool
	}
	rows := []row{
		{RoleSuperAdmin, RoleSuperAdmin, false, true, true},
		{RoleSuperAdmin, RoleSuperAdmin, true, true, true},
		{RoleSuperAdmin, RoleAdmin, false, true, true},
		{RoleSuperAdmin, RoleAdmin, true, true, true},

		{RoleAdmin, RoleSuperAdmin, false, false, false},
		{RoleAdmin, RoleSuperAdmin, true, true, true},
		{RoleAdmin, RoleAdmin, false, true, true},
		{RoleAdmin, RoleAdmin, true, true, true},

		{RoleEditor, RoleSuperAdmin, false, false, false},
		{RoleEditor, RoleSuperAdmin, true, true, false},
		{RoleEditor, RoleAdmin, false, false, false},
		{RoleEditor, RoleAdmin, true, true, false},

		{RoleViewer, RoleSuperAdmin, false, false, false},
		{RoleViewer, RoleSuperAdmin, true, true, false},
		{RoleViewer, RoleAdmin, false, false, false},
		{RoleViewer, RoleAdmin, true, true, false},
	}
	for _, r := range rows {
		ident := Identity{UserID: 99, Role: r.role}
		facts := MovieFacts{CreatedBy: 1, CreatorRole: r.creatorRole, Assigned: r.assigned}

		readErr := CanReadMovie(ident, facts)
		mutateErr := CanMutateMovie(ident, facts)
		assignErr := CanManageAssignments(ident, facts)

		assert.Equal(t, r.read, readErr == nil,
			"read role=%s creator=%s assigned=%v: %v", r.role, r.creatorRole, r.assigned, readErr)
		assert.Equal(t, r.mutate, mutateErr == nil,
			"mutate role=%s creator=%s assigned=%v: %v", r.role, r.creatorRole, r.assigned, mutateErr)
		// assignment management follows the mutate rule exactly
		assert.Equal(t, r.mutate, assignErr == nil,
			"assign role=%s creator=%s assigned=%v: %v", r.role, r.creatorRole, r.assigned, assignErr)
	}
}

func TestAdminReadsOwnMovie(t *testing.T) {
	ident := Identity{UserID: 7, Role: RoleAdmin}
	facts := MovieFacts{CreatedBy: 7, CreatorRole: RoleAdmin, Assigned: false}
	assert.NoError(t, CanReadMovie(ident, facts))
}

func TestFileDecisionTable(t *testing.T) {
	actions := []FileAction{FileUpload, FileList, FileDelete, FileDownload}

	type row struct {
		role        Role
		creatorRole Role
		assigned    bool
		allowed     map[FileAction]bool
	}
	all := map[FileAction]bool{FileUpload: true, FileList: true, FileDelete: true, FileDownload: true}
	none := map[FileAction]bool{}
	noUpload := map[FileAction]bool{FileList: true, FileDelete: true, FileDownload: true}

	rows := []row{
		{RoleSuperAdmin, RoleSuperAdmin, false, all},
		{RoleAdmin, RoleAdmin, false, all},
		{RoleAdmin, RoleSuperAdmin, false, none},
		{RoleAdmin, RoleSuperAdmin, true, all},
		{RoleEditor, RoleAdmin, false, none},
		{RoleEditor, RoleAdmin, true, all},
		{RoleViewer, RoleAdmin, false, none},
		{RoleViewer, RoleAdmin, true, noUpload},
	}
	for _, r := range rows {
		ident := Identity{UserID: 42, Role: r.role}
		facts := MovieFacts{CreatedBy: 1, CreatorRole: r.creatorRole, Assigned: r.assigned}
		for _, action := range actions {
			err := CanFileAction(ident, action, facts)
			assert.Equal(t, r.allowed[action], err == nil,
				"role=%s creator=%s assigned=%v action=%d: %v", r.role, r.creatorRole, r.assigned, action, err)
		}
	}
}
