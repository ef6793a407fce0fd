// Package dictionary is the orchestrator for the SymSpell engine: it wires
// together the arena allocator, the hash primitive, the exact-match and
// delete indexes, and the delete enumerator into a load pipeline and a
// lookup pipeline.
//
package dictionary

import "fmt"

// ErrorKind classifies the ways building or loading a dictionary can fail.
type ErrorKind uint8

const (
	// ConfigErrorKind marks an invalid Config, reported by New.
	ConfigErrorKind ErrorKind = iota
	// IOErrorKind marks a dictionary file that could not be read, reported
	// by Load.
	IOErrorKind
	// ResourceExhaustedKind marks an arena or table that ran out of
	// capacity during Load.
	ResourceExhaustedKind
	// MalformedInputKind advisory-labels the per-line parse failures Load
	// counts in Stats.MalformedLines rather than fails on. It is never
	// returned as an *Error itself; it exists so callers that walk
	// ErrorKind values have a name for what that counter represents.
	MalformedInputKind
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ConfigErrorKind:
		return "ConfigError"
	case IOErrorKind:
		return "IOError"
	case ResourceExhaustedKind:
		return "ResourceExhausted"
	case MalformedInputKind:
		return "MalformedInput"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// Error represents a failure at the create or load boundary. Lookup itself
// never returns an Error: a query with no acceptable correction is not a
// failure, just a zero count.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("symspell: %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("symspell: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements error comparison for errors.Is, matching on Kind alone so
// callers can write errors.Is(err, &dictionary.Error{Kind: dictionary.IOErrorKind}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
