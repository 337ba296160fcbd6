package faunakit

import (
	"errors"

	f "github.com/fauna/faunadb-go/v4/faunadb"
)

// Errors are forwarded from the engine unmodified; these helpers only
// inspect the driver's error types, they never wrap or translate them.

// IsNotFound reports whether err is the engine's not-found fault.
func IsNotFound(err error) bool {
	var e f.NotFound
	return errors.As(err, &e)
}

// IsBadRequest reports whether err is the engine's bad-request fault
// (malformed query, unknown index, invalid cursor).
func IsBadRequest(err error) bool {
	var e f.BadRequest
	return errors.As(err, &e)
}

// IsUnauthorized reports whether err is the engine's authentication fault.
func IsUnauthorized(err error) bool {
	var e f.Unauthorized
	return errors.As(err, &e)
}

// IsPermissionDenied reports whether err is the engine's permission fault.
func IsPermissionDenied(err error) bool {
	var e f.PermissionDenied
	return errors.As(err, &e)
}
