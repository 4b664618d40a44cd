// Package errs defines the build error taxonomy. Every build failure
// surfaces to the caller as one of these types; nothing is retried or
// recovered locally.
package errs

import (
	"errors"
	"fmt"
)

// MissingConfigurationError means a required tech option was not set, so
// the build task cannot start.
type MissingConfigurationError struct {
	Tech   string
	Option string
}

func (e *MissingConfigurationError) Error() string {
	return fmt.Sprintf("%s: missing required option %q", e.Tech, e.Option)
}

// FileReadError wraps a failure to read a template source or keyset file.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// KeysetParseError wraps a parser rejection of keyset file contents. The
// underlying decoder error is kept verbatim.
type KeysetParseError struct {
	Path string
	Err  error
}

func (e *KeysetParseError) Error() string {
	return fmt.Sprintf("parse keyset %s: %v", e.Path, e.Err)
}

func (e *KeysetParseError) Unwrap() error { return e.Err }

// CompilationError wraps a template or localization compiler rejection.
type CompilationError struct {
	Target string
	Err    error
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("compile %s: %v", e.Target, e.Err)
}

func (e *CompilationError) Unwrap() error { return e.Err }

func IsMissingConfiguration(err error) bool {
	var t *MissingConfigurationError
	return errors.As(err, &t)
}

func IsFileRead(err error) bool {
	var t *FileReadError
	return errors.As(err, &t)
}

func IsKeysetParse(err error) bool {
	var t *KeysetParseError
	return errors.As(err, &t)
}

func IsCompilation(err error) bool {
	var t *CompilationError
	return errors.As(err, &t)
}
