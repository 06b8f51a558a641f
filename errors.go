package roadbuffer

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// ParseError is returned when source document is malformed
type ParseError struct {
	Path  string
	Token string // Offending token (if any)
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("parse '%s': bad token '%s': %s", e.Path, e.Token, e.Err)
	}
	return fmt.Sprintf("parse '%s': %s", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Cause makes ParseError compatible with errors.Cause
func (e *ParseError) Cause() error {
	return e.Err
}

// IOError is returned when source file can't be opened or read
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read '%s': %s", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Cause makes IOError compatible with errors.Cause
func (e *IOError) Cause() error {
	return e.Err
}

// NotFound reports whether source file does not exist
func (e *IOError) NotFound() bool {
	return os.IsNotExist(errors.Cause(e.Err))
}

func newParseError(path, token string, err error) *ParseError {
	return &ParseError{Path: path, Token: token, Err: err}
}

func newIOError(path string, err error, msg string) *IOError {
	return &IOError{Path: path, Err: errors.Wrap(err, msg)}
}

// TooCloseError is validation failure: distance to the closest road of class does not exceed minimum
type TooCloseError struct {
	Class          RoadClass
	Name           string
	DistanceMeters float64
	MinimumMeters  float64
}

func (e *TooCloseError) Error() string {
	return fmt.Sprintf("closest %s is too close: %.2fm, minimum: %.2fm", e.Name, e.DistanceMeters, e.MinimumMeters)
}
