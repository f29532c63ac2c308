package authz

import "errors"

var (
	// ErrInvalidRole marks a role name outside the four known roles. It is a
	// malformed-identity error, not a denial.
	ErrInvalidRole = errors.New("invalid role")

	// ErrUnsupportedFile marks an upload whose extension does not match the
	// allow-list for its declared content type.
	ErrUnsupportedFile = errors.New("unsupported file type")
)

// DeniedError reports which rule refused the operation. The reason string is
// surfaced verbatim by the HTTP boundary.
type DeniedError struct {
	Reason string
}

func (e *DeniedError) Error() string { return "forbidden: " + e.Reason }

func denied(reason string) error { return &DeniedError{Reason: reason} }

// IsDenied reports whether err is a permission denial (as opposed to a
// malformed input or a missing resource).
func IsDenied(err error) bool {
	var de *DeniedError
	return errors.As(err, &de)
}
