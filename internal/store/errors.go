package store

import "errors"

// ErrNotFound is returned by all stores when a row does not exist for the
// given id/user pair.
var ErrNotFound = errors.New("not found")
