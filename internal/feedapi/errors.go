package feedapi

import "errors"

// Load failures reported by RemoteLoader. Use errors.Is to test for them.
var (
	// ErrConnectivity means the server could not be reached.
	ErrConnectivity = errors.New("connectivity")
	// ErrInvalidData covers everything else: a non-200 status, a body that
	// does not decode, and transport failures that are not connectivity.
	ErrInvalidData = errors.New("invalid data")
)
