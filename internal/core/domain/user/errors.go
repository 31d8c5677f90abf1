package user

import "errors"

// ErrNotFound is returned by repositories when no account matches the lookup.
var ErrNotFound = errors.New("user not found")
