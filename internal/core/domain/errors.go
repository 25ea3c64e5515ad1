package domain

import "errors"

var (
	// ErrNetwork marks a transport-level failure on a remote call.
	ErrNetwork = errors.New("network failure")

	// ErrRemote marks a non-success status or a malformed remote body.
	ErrRemote = errors.New("remote service failure")

	ErrAuth           = errors.New("invalid credentials")
	ErrValidation     = errors.New("missing required field")
	ErrNotImplemented = errors.New("not implemented")
	ErrNotFound       = errors.New("not found")
)

// RemoteAuthError carries the backend's user-facing message for a
// rejected auth call. It matches ErrAuth in errors.Is checks.
type RemoteAuthError struct {
	Message string
}

func (e *RemoteAuthError) Error() string {
	return e.Message
}

func (e *RemoteAuthError) Unwrap() error {
	return ErrAuth
}
