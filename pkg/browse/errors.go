package browse

import "github.com/pkg/errors"

var (
	// ErrDirectoryNotFound is returned when the path is missing or isn't a
	// directory.
	ErrDirectoryNotFound = errors.New("directory not found")
	// ErrDirectoryAccess is returned when the directory exists but can't be
	// listed.
	ErrDirectoryAccess = errors.New("directory access denied")
)
