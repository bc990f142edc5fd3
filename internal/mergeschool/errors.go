package mergeschool

import (
	"fmt"
)

// MissingDependencyError means a codec or file reader the run needs is
// not available. Nothing has been read when it is returned.
type MissingDependencyError struct {
	Name string
	Hint string
	Err  error
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("missing dependency %s: %v; %s", e.Name, e.Err, e.Hint)
}

func (e *MissingDependencyError) Unwrap() error {
	return e.Err
}

// MissingFileError means an input file does not exist.
type MissingFileError struct {
	Role string
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("%s file not found: %s", e.Role, e.Path)
}

// ParseError means an input exists but could not be decoded into a table
// holding both key columns.
type ParseError struct {
	Role string
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to load %s file %s: %v", e.Role, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// EmptyJoinError means no major row matched any school row. That almost
// always points at a key normalization problem, so it is never treated as
// a valid empty result.
type EmptyJoinError struct {
	Diagnostics Diagnostics
}

func (e *EmptyJoinError) Error() string {
	d := e.Diagnostics
	return fmt.Sprintf("join result is empty: %d major codes, %d school codes, %d in common",
		d.MajorCodes, d.SchoolCodes, d.CommonCodes)
}

// WriteError means the joined table could not be saved.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
