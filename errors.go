package envkit

import (
	stderrs "errors"
	"fmt"
	"reflect"
)

// Sentinel reasons. Match with errors.Is through the *Error wrapper
var (
	// ErrNotSet reports a required variable that was absent
	ErrNotSet = stderrs.New("not set")

	// ErrNonUnicode reports a value that is not valid UTF-8
	ErrNonUnicode = stderrs.New("value is not valid unicode")
)

// Error binds the name of the variable that was looked up to the reason the
// retrieval failed. Key is always present and Reason is always exactly one of
// ErrNotSet, ErrNonUnicode, *ParseError or *ParseDefaultError
type Error struct {
	// Key is the environment variable name
	Key string
	// Reason is the typed cause
	Reason error
}

// newError pins key and reason at the point of failure
func newError(key string, reason error) *Error {
	return &Error{Key: key, Reason: reason}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("read %s env var: %v", e.Key, e.Reason)
}

// Unwrap returns the reason so errors.Is and errors.As see through the key
func (e *Error) Unwrap() error { return e.Reason }

// ParseError reports a value that was present and valid text but failed the
// type-specific conversion
type ParseError struct {
	// Err is the conversion error, e.g. a *strconv.NumError or a Parser error
	Err error
}

// Error implements the error interface
func (e *ParseError) Error() string { return fmt.Sprintf("unable to parse: %v", e.Err) }

// Unwrap returns the conversion error
func (e *ParseError) Unwrap() error { return e.Err }

// ParseDefaultError reports a textual default that failed conversion while
// the variable itself was not set
type ParseDefaultError struct {
	// Err is the conversion error for the default text
	Err error
}

// Error implements the error interface
func (e *ParseDefaultError) Error() string {
	return fmt.Sprintf("unable to parse the default value while the variable was not set: %v", e.Err)
}

// Unwrap returns the conversion error
func (e *ParseDefaultError) Unwrap() error { return e.Err }

// UnsupportedTypeError reports a target type the built-in conversion set does
// not cover and whose pointer does not implement encoding.TextUnmarshaler
type UnsupportedTypeError struct {
	// Type is the requested target type
	Type reflect.Type
}

// Error implements the error interface
func (e *UnsupportedTypeError) Error() string {
	return "no parser for type " + e.Type.String()
}

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KeyOf extracts the variable name from any error, defaulting to ""
func KeyOf(err error) string {
	if e, ok := As(err); ok {
		return e.Key
	}
	return ""
}

// IsNotSet reports whether err is a required-variable-absent failure
func IsNotSet(err error) bool { return stderrs.Is(err, ErrNotSet) }
