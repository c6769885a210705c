// internal/services/errors.go
package services

import "errors"

// ErrNotFound reports that an entity id had no matching row. Handlers
// translate it to a 404; every other service error is a 500.
var ErrNotFound = errors.New("record not found")
