// Package errorspkg provides common app errors.
package errorspkg

import "errors"

// ErrInternal indicates that the underlying storage did not complete the operation.
var ErrInternal = errors.New("internal")
