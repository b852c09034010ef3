package store

import "errors"

// ErrDatabaseNotConfigured is returned by every store operation when no
// database connection was established at startup. Callers translate it to
// a service-unavailable response rather than crashing.
var ErrDatabaseNotConfigured = errors.New("database not configured")
