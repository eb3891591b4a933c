package apperrors

import "errors"

// Session manager errors. All recoverable: surfaced to the caller as a
// message, no state change on failure.
var (
	ErrInvalidEmailDomain   = errors.New("email is not from an allowed college domain")
	ErrAccountAlreadyExists = errors.New("account already exists")
	ErrAccountNotFound      = errors.New("account not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidPassword      = errors.New("invalid password format")
)

// Community store errors
var (
	ErrUnauthenticated  = errors.New("no active session")
	ErrRecordNotFound   = errors.New("record not found")
	ErrValidationFailed = errors.New("validation failed")
)

// Is reports whether err matches target or any of the errors in errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
