// Package errors provides the error kinds reported by solanainit.
package errors

import "fmt"

// CommandError reports an external command that failed to spawn or exited non-zero.
type CommandError struct {
	// Command describes which command failed (e.g. "cargo init").
	Command string

	// Err is the underlying spawn or exit error (optional).
	Err error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Command failed: %s: %v", e.Command, e.Err)
	}
	return "Command failed: " + e.Command
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is matches ErrCommandFailed.
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}

// DirectoryExistsError reports a target directory that exists and is not empty.
type DirectoryExistsError struct {
	Path string
}

// Error implements the error interface.
func (e *DirectoryExistsError) Error() string {
	return "Directory already exists and is not empty: " + e.Path
}

// Is matches ErrDirectoryExists.
func (e *DirectoryExistsError) Is(target error) bool {
	return target == ErrDirectoryExists
}

// IOError reports a filesystem failure.
type IOError struct {
	// Op is the attempted operation (read, write, mkdir, stat).
	Op string

	// Path is the file or directory involved.
	Path string

	Err error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("IO error: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is matches ErrIO.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// ConfigError reports a structured-data parse or serialize failure.
type ConfigError struct {
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Configuration error: %s: %v", e.Message, e.Err)
	}
	return "Configuration error: " + e.Message
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is matches ErrConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// UsageError reports a malformed CLI invocation.
type UsageError struct {
	Message string
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return "Usage error: " + e.Message
}

// Is matches ErrUsage.
func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// NewCommandError creates a CommandError for the named command.
func NewCommandError(command string, err error) error {
	return &CommandError{Command: command, Err: err}
}

// NewIOError creates an IOError.
func NewIOError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}

// NewConfigError creates a ConfigError.
func NewConfigError(message string, err error) error {
	return &ConfigError{Message: message, Err: err}
}

// NewUsageError creates a UsageError.
func NewUsageError(message string) error {
	return &UsageError{Message: message}
}
