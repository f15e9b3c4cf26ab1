package authz

import "errors"

// Kind sentinels. Engine packages wrap these with errors.Join so that
// errors.Is(err, authz.ErrForbidden) classifies any denial regardless of
// which component produced it.
var (
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrInternal     = errors.New("internal error")
)

// IsDenial reports whether err is an explicit authorization denial,
// i.e. Forbidden or Unauthorized. Denials must never be swallowed by
// fail-open error handling.
func IsDenial(err error) bool {
	return errors.Is(err, ErrForbidden) || errors.Is(err, ErrUnauthorized)
}
