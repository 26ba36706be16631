package silver

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn is reported when a required header column is absent.
	ErrMissingColumn = errors.New("missing required column")
	// ErrEmpty is reported when a dataset file has no header line.
	ErrEmpty = errors.New("empty dataset")
	// ErrValidation is reported for calculator inputs out of their domain.
	ErrValidation = errors.New("invalid input")
	// ErrRate is reported when an exchange rate cannot be resolved.
	ErrRate = errors.New("exchange rate unavailable")
)

// IOError reports a dataset file that cannot be opened or read.
type IOError struct {
	Path string // empty when parsing from a reader
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("cannot read dataset: %v", e.Err)
	}
	return fmt.Sprintf("cannot read %q: %v", e.Path, e.Err)
}
func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports a dataset whose structure is unusable.
type ParseError struct {
	Path   string // empty when parsing from a reader
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Column != "" {
		msg = fmt.Sprintf("%v %q", e.Err, e.Column)
	}
	if e.Path != "" {
		return fmt.Sprintf("cannot parse %q: %s", e.Path, msg)
	}
	return "cannot parse dataset: " + msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports a calculator argument out of its domain.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
