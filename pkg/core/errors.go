package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidName       = errors.New("name cannot be empty")
	ErrInvalidColour     = errors.New("invalid colour")
	ErrDuplicateName     = errors.New("name is already in use")
	ErrNotMember         = errors.New("item does not belong to the given container")
	ErrNotFound          = errors.New("file does not exist")
	ErrCorrupt           = errors.New("malformed or missing information")
	ErrPermission        = errors.New("insufficient permissions")
	ErrInvalidTransition = errors.New("invalid relocation transition")
)

// LoadError reports a save file that could not be read. It is fatal for the
// consuming application: nothing may be written until the user has been told
// which file is broken.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to read save data file '%s': %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
