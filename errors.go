package cchooks

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidJSON is wrapped by the ParseError returned for input that is not
// syntactically valid JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// ParseError reports input that could not be parsed into a JSON object:
// empty input, malformed JSON, or a valid JSON value of the wrong shape.
// It is raised before any context exists and is distinct from a
// ValidationError.
type ParseError struct {
	msg string
	err error
}

func (e *ParseError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *ParseError) Unwrap() error { return e.err }

// ValidationError reports a payload that parsed but cannot construct the
// requested context. Missing required fields — common envelope and
// kind-specific alike — accumulate into one error so a caller can surface
// the complete list in a single diagnostic. A hook_event_name naming a
// different kind reports through the same error, not a separate type.
type ValidationError struct {
	// Event is the kind whose context was being constructed.
	Event Event

	// Missing lists every absent required field, common envelope fields
	// first, in declaration order.
	Missing []string

	// Mismatch holds the payload's hook_event_name when it names a kind
	// other than Event. Empty otherwise.
	Mismatch Event
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing required %s fields: %s", e.Event, strings.Join(e.Missing, ", ")))
	}
	if e.Mismatch != "" {
		parts = append(parts, fmt.Sprintf("hook_event_name is %q, want %q", string(e.Mismatch), string(e.Event)))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("invalid %s payload", e.Event)
	}
	return strings.Join(parts, "; ")
}

// UnknownEventError reports a hook_event_name outside the recognized kinds.
// It is raised at dispatch, before any kind-specific validation runs.
type UnknownEventError struct {
	// Name is the offending hook_event_name value. Empty when the field
	// was absent or not a string.
	Name string
}

func (e *UnknownEventError) Error() string {
	if e.Name == "" {
		return "missing hook_event_name"
	}
	return fmt.Sprintf("unknown hook event: %q", e.Name)
}
