package authz

// Identity is the verified {role, user id} pair handed over by the credential
// layer. The decision procedure trusts it as-is and never re-checks
// credentials.
type Identity struct {
	UserID int64
	Role   Role
}

// MovieFacts are the per-movie inputs a decision needs: who created it, what
// role the creator holds, and whether the requesting user is assigned to it.
type MovieFacts struct {
	CreatedBy   int64
	CreatorRole Role
	Assigned    bool
}

// CanViewUser decides whether ident may read the user record identified by
// targetID/targetRole.
func CanViewUser(ident Identity, targetID int64, targetRole Role) error {
	switch ident.Role {
	case RoleSuperAdmin:
		return nil
	case RoleAdmin:
		if targetRole == RoleSuperAdmin {
			return denied("admin cannot view a super_admin user")
		}
		return nil
	case RoleEditor:
		if targetRole == RoleEditor || targetRole == RoleViewer {
			return nil
		}
		return denied("editor can only view editor and viewer users")
	case RoleViewer:
		if targetRole == RoleViewer && targetID == ident.UserID {
			return nil
		}
		return denied("viewer can only view their own record")
	}
	return ErrInvalidRole
}

// CanMutateUser decides whether ident may update or delete a user with the
// given role. Mutations are limited to super_admin and admin; an admin can
// never touch a super_admin.
func CanMutateUser(ident Identity, targetRole Role) error {
	switch ident.Role {
	case RoleSuperAdmin:
		return nil
	case RoleAdmin:
		if targetRole == RoleSuperAdmin {
			return denied("admin cannot modify a super_admin user")
		}
		return nil
	case RoleEditor, RoleViewer:
		return denied("only super_admin and admin can modify users")
	}
	return ErrInvalidRole
}

func CanCreateMovie(ident Identity) error {
	switch ident.Role {
	case RoleSuperAdmin, RoleAdmin:
		return nil
	case RoleEditor, RoleViewer:
		return denied("only super_admin and admin can create movies")
	}
	return ErrInvalidRole
}

// CanReadMovie decides single-movie reads. Editors and viewers need an
// assignment; admins additionally see any movie not created by a super_admin.
func CanReadMovie(ident Identity, f MovieFacts) error {
	switch ident.Role {
	case RoleSuperAdmin:
		return nil
	case RoleAdmin:
		if f.Assigned || f.CreatedBy == ident.UserID || f.CreatorRole != RoleSuperAdmin {
			return nil
		}
		return denied("admin cannot view a super_admin movie without an assignment")
	case RoleEditor, RoleViewer:
		if f.Assigned {
			return nil
		}
		return denied("movie not assigned")
	}
	return ErrInvalidRole
}

// CanMutateMovie decides update and delete. An admin may touch a movie
// created by a super_admin only when explicitly assigned to it.
func CanMutateMovie(ident Identity, f MovieFacts) error {
	switch ident.Role {
	case RoleSuperAdmin:
		return nil
	case RoleAdmin:
		if f.CreatorRole == RoleSuperAdmin && !f.Assigned {
			return denied("admin cannot modify a super_admin movie without an assignment")
		}
		return nil
	case RoleEditor, RoleViewer:
		return denied("only super_admin and admin can modify movies")
	}
	return ErrInvalidRole
}

// CanManageAssignments decides assign/unassign on a movie. The super_admin
// restriction is evaluated against the requesting admin's own assignment, not
// the assignment being created or removed.
func CanManageAssignments(ident Identity, f MovieFacts) error {
	switch ident.Role {
	case RoleSuperAdmin:
		return nil
	case RoleAdmin:
		if f.CreatorRole == RoleSuperAdmin && !f.Assigned {
			return denied("admin cannot manage assignments on a super_admin movie without an assignment")
		}
		return nil
	case RoleEditor, RoleViewer:
		return denied("only super_admin and admin can assign movies")
	}
	return ErrInvalidRole
}

type FileAction int

const (
	FileUpload FileAction = iota
	FileList
	FileDelete
	FileDownload
)

// CanFileAction decides file operations through the parent movie's facts.
func CanFileAction(ident Identity, action FileAction, f MovieFacts) error {
	switch ident.Role {
	case RoleSuperAdmin:
		return nil
	case RoleAdmin:
		if f.CreatorRole == RoleSuperAdmin && !f.Assigned {
			return denied("admin cannot access files of a super_admin movie without an assignment")
		}
		return nil
	case RoleEditor:
		if !f.Assigned {
			return denied("editor can only access files of assigned movies")
		}
		return nil
	case RoleViewer:
		if action == FileUpload {
			return denied("viewer cannot upload files")
		}
		if !f.Assigned {
			return denied("movie not assigned")
		}
		return nil
	}
	return ErrInvalidRole
}
