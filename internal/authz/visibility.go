package authz

// Visibility scopes are declarative predicates the store layer pushes into
// SQL. They are computed once per request from the verified identity and
// never consult the database themselves.

// UserScope restricts a user listing. When All is false, only users whose
// role name is in RoleNames are visible; SelfID further restricts the listing
// to the requester's own record (viewer case).
type UserScope struct {
	All       bool
	RoleNames []string
	SelfID    int64
}

func VisibleUsers(ident Identity) UserScope {
	switch ident.Role {
	case RoleSuperAdmin:
		return UserScope{All: true}
	case RoleViewer:
		return UserScope{RoleNames: RoleNamesAtOrBelow(RoleViewer), SelfID: ident.UserID}
	default:
		// admin and editor see everyone at or below their own rank
		return UserScope{RoleNames: RoleNamesAtOrBelow(ident.Role)}
	}
}

// MovieScope restricts a movie listing. AssignedTo selects movies the
// requester holds an assignment on; AnyNonSuperAdminCreator additionally
// admits movies whose creator is not a super_admin (admin case).
type MovieScope struct {
	All                     bool
	AssignedTo              int64
	AnyNonSuperAdminCreator bool
}

func VisibleMovies(ident Identity) MovieScope {
	switch ident.Role {
	case RoleSuperAdmin:
		return MovieScope{All: true}
	case RoleAdmin:
		return MovieScope{AssignedTo: ident.UserID, AnyNonSuperAdminCreator: true}
	default:
		return MovieScope{AssignedTo: ident.UserID}
	}
}

// AssignmentScope restricts an assignment listing. Admins see the union of
// assignments on their own movies, assignments they granted, and assignments
// whose assignee is not a super_admin. Editors and viewers see only their own
// rows.
type AssignmentScope struct {
	All        bool
	AssigneeID int64
	AdminID    int64
}

func VisibleAssignments(ident Identity) AssignmentScope {
	switch ident.Role {
	case RoleSuperAdmin:
		return AssignmentScope{All: true}
	case RoleAdmin:
		return AssignmentScope{AdminID: ident.UserID}
	default:
		return AssignmentScope{AssigneeID: ident.UserID}
	}
}
