// Package envkit reads process environment variables into typed values
//
// Every retrieval is a single synchronous lookup followed by a conversion;
// nothing is cached, watched, or mutated. Failures come back as *Error values
// that pair the variable name with a machine-inspectable reason, so callers
// can tell "not set" from "not valid text" from "did not parse".
//
// Maybe is the only function that touches the environment; Must, Or, OrElse
// and OrParse are thin compositions over it.
package envkit

import (
	"os"
	"unicode/utf8"
)

// lookupEnv is the seam to the process environment.
// Tests swap it via testkit.Swap to run without touching real env state
var lookupEnv = os.LookupEnv

// Maybe returns the value of the env var key parsed into T, if the variable
// is set. ok reports whether the variable was present; an absent variable is
// not an error. Fails with reason ErrNonUnicode when the value is not valid
// UTF-8, or *ParseError when the conversion to T fails
func Maybe[T any](key string) (val T, ok bool, err error) {
	raw, ok := lookupEnv(key)
	if !ok {
		return val, false, nil
	}
	if !utf8.ValidString(raw) {
		return val, false, newError(key, ErrNonUnicode)
	}
	val, perr := parseText[T](raw)
	if perr != nil {
		return val, false, newError(key, &ParseError{Err: perr})
	}
	return val, true, nil
}

// Must returns the value of the env var key parsed into T.
// Fails with reason ErrNotSet when the variable is absent, otherwise with
// whatever reason Maybe produced
func Must[T any](key string) (T, error) {
	val, ok, err := Maybe[T](key)
	if err != nil {
		return val, err
	}
	if !ok {
		return val, newError(key, ErrNotSet)
	}
	return val, nil
}

// Or returns the value of the env var key parsed into T, or def when the
// variable is absent. Parse and unicode failures are still errors; the
// default never masks a malformed value
func Or[T any](key string, def T) (T, error) {
	val, ok, err := Maybe[T](key)
	if err != nil {
		return val, err
	}
	if !ok {
		return def, nil
	}
	return val, nil
}

// OrElse is Or with a lazily produced default: def is invoked only when the
// variable is absent, and exactly once
func OrElse[T any](key string, def func() T) (T, error) {
	val, ok, err := Maybe[T](key)
	if err != nil {
		return val, err
	}
	if !ok {
		return def(), nil
	}
	return val, nil
}

// OrParse returns the value of the env var key parsed into T, or the parse of
// the textual default def when the variable is absent. A default that does not
// parse fails with reason *ParseDefaultError, keeping malformed-default bugs
// distinct from malformed-input bugs
func OrParse[T any](key, def string) (T, error) {
	val, ok, err := Maybe[T](key)
	if err != nil {
		return val, err
	}
	if ok {
		return val, nil
	}
	val, perr := parseText[T](def)
	if perr != nil {
		return val, newError(key, &ParseDefaultError{Err: perr})
	}
	return val, nil
}
