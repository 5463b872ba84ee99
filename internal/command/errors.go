package command

import (
	"fmt"
	"strings"
)

// unknownExitCode is the fixed process exit code for an unresolved command.
const unknownExitCode = 1

// UnknownError reports that a token did not match any child at the current
// tree position. Path holds every token consumed up to and including the one
// that failed.
type UnknownError struct {
	Path []string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("unknown command %q", strings.Join(e.Path, " "))
}

// ExitCode implements the exit-code contract checked by the entrypoint.
func (e *UnknownError) ExitCode() int { return unknownExitCode }

// DuplicateError reports a registration attempt at a path where a command
// already exists. It surfaces at startup, before any resolution happens.
type DuplicateError struct {
	Path []string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("command %q already registered", strings.Join(e.Path, " "))
}

// Error is the generic failure a command returns from Invoke. Params are
// structured slog key/value pairs reported alongside the message; Code
// becomes the process exit code.
type Error struct {
	Code    int
	Message string
	Params  []any
}

// NewError builds a command failure with an exit code and optional
// structured parameters.
func NewError(code int, message string, params ...any) *Error {
	return &Error{Code: code, Message: message, Params: params}
}

func (e *Error) Error() string { return e.Message }

// ExitCode implements the exit-code contract checked by the entrypoint.
func (e *Error) ExitCode() int { return e.Code }
