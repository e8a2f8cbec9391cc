package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrIO indicates a filesystem read, write, or directory creation failure.
	ErrIO = errors.New("io error")

	// ErrCommandFailed indicates an external command could not be spawned or exited non-zero.
	ErrCommandFailed = errors.New("command failed")

	// ErrDirectoryExists indicates the target directory exists and is not empty.
	ErrDirectoryExists = errors.New("directory exists")

	// ErrUsage indicates a malformed CLI invocation.
	ErrUsage = errors.New("usage error")

	// ErrConfig indicates a structured-data parse or serialize failure.
	ErrConfig = errors.New("configuration error")
)
