package cchooks

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Context is the typed representation of one hook invocation's payload.
// Obtain one through Parse, ParseAs, FromReader, or FromStdin — those
// factories are the only supported construction path. Type-switch on the
// concrete kind to reach kind-specific accessors and the bound output:
//
//	ctx, err := cchooks.FromStdin()
//	if err != nil {
//	    cchooks.HandleError(err)
//	}
//	switch c := ctx.(type) {
//	case *cchooks.PreToolUse:
//	    c.Output().Allow("safe operation")
//	case *cchooks.Stop:
//	    c.Output().ExitSuccess("done")
//	}
type Context interface {
	// Event returns the kind this context was constructed for.
	Event() Event

	// SessionID returns the session identifier from the common envelope.
	SessionID() string

	// TranscriptPath returns the transcript file path from the common
	// envelope.
	TranscriptPath() string

	// Field returns the raw JSON value at path. It is the introspection
	// escape hatch for payload keys not promoted to named accessors;
	// unknown extra fields are retained, never rejected.
	Field(path string) ([]byte, bool)
}

// envelope carries the validated payload and implements the accessors
// common to every kind.
type envelope struct {
	payload Payload
	event   Event
}

func (e *envelope) Event() Event           { return e.event }
func (e *envelope) SessionID() string      { return e.payload.str("session_id") }
func (e *envelope) TranscriptPath() string { return e.payload.str("transcript_path") }

func (e *envelope) Field(path string) ([]byte, bool) { return e.payload.GetBytes(path) }

// newEnvelope runs the merged validation pass for one kind: common envelope
// fields and kind-specific required fields accumulate into a single
// missing-field report, and a present hook_event_name naming a different
// kind joins that same report rather than raising separately.
func newEnvelope(p Payload, event Event, required ...string) (envelope, error) {
	missing := missingFields(p, commonFields...)
	missing = append(missing, missingFields(p, required...)...)

	// Compare the coerced name so a non-string hook_event_name cannot slip
	// past the check. Values that coerce to nothing report as their raw
	// JSON so the mismatch stays distinguishable from no mismatch at all.
	var mismatch Event
	if raw, ok := p.GetBytes("hook_event_name"); ok {
		if name := p.str("hook_event_name"); Event(name) != event {
			if name == "" {
				name = string(raw)
			}
			mismatch = Event(name)
		}
	}

	if len(missing) > 0 || mismatch != "" {
		return envelope{}, &ValidationError{Event: event, Missing: missing, Mismatch: mismatch}
	}
	return envelope{payload: p, event: event}, nil
}

// Parse builds the typed context for the event kind named by the payload's
// hook_event_name. It fails with a ParseError for non-object input, an
// UnknownEventError for an unrecognized kind, and a ValidationError for
// missing required fields.
func Parse(raw []byte, opts ...Option) (Context, error) {
	p, err := ParsePayload(raw)
	if err != nil {
		return nil, err
	}
	event := Event(p.str("hook_event_name"))
	if !event.Known() {
		return nil, &UnknownEventError{Name: string(event)}
	}
	return construct(event, p, newStreams(opts))
}

// ParseAs builds the typed context for a declared event kind. A payload
// whose hook_event_name names a different kind fails with a
// ValidationError, the same reporting surface as a missing field.
func ParseAs(raw []byte, event Event, opts ...Option) (Context, error) {
	if !event.Known() {
		return nil, &UnknownEventError{Name: string(event)}
	}
	p, err := ParsePayload(raw)
	if err != nil {
		return nil, err
	}
	return construct(event, p, newStreams(opts))
}

// FromReader consumes the reader and dispatches like Parse.
func FromReader(r io.Reader, opts ...Option) (Context, error) {
	p, err := ReadPayload(r)
	if err != nil {
		return nil, err
	}
	event := Event(p.str("hook_event_name"))
	if !event.Known() {
		return nil, &UnknownEventError{Name: string(event)}
	}
	return construct(event, p, newStreams(opts))
}

// FromStdin reads the hook payload from standard input, the channel Claude
// Code delivers events on.
func FromStdin(opts ...Option) (Context, error) {
	return FromReader(os.Stdin, opts...)
}

func newStreams(opts []Option) streams {
	s := defaultStreams()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// construct is the single seam from validated payload to typed context.
func construct(event Event, p Payload, s streams) (Context, error) {
	switch event {
	case PreToolUseEvent:
		return newPreToolUse(p, s)
	case PostToolUseEvent:
		return newPostToolUse(p, s)
	case NotificationEvent:
		return newNotification(p, s)
	case UserPromptSubmitEvent:
		return newUserPromptSubmit(p, s)
	case StopEvent:
		return newStop(p, s)
	case SubagentStopEvent:
		return newSubagentStop(p, s)
	case PreCompactEvent:
		return newPreCompact(p, s)
	case SessionStartEvent:
		return newSessionStart(p, s)
	case SessionEndEvent:
		return newSessionEnd(p, s)
	default:
		return nil, &UnknownEventError{Name: string(event)}
	}
}

// HandleError converts a factory error into a diagnostic on the error
// channel and terminates with exit code 1. The {0, 2} protocol codes carry
// hook decisions; code 1 tells the host the hook itself failed before it
// could decide anything. Intended for hook main functions:
//
//	ctx, err := cchooks.FromStdin()
//	if err != nil {
//	    cchooks.HandleError(err)
//	}
func HandleError(err error, opts ...Option) {
	s := newStreams(opts)

	var perr *ParseError
	var verr *ValidationError
	var uerr *UnknownEventError
	switch {
	case errors.As(err, &perr):
		fmt.Fprintf(s.stderr, "failed to parse hook input: %v\n", perr)
	case errors.As(err, &verr):
		fmt.Fprintf(s.stderr, "hook validation failed: %v\n", verr)
	case errors.As(err, &uerr):
		fmt.Fprintf(s.stderr, "invalid hook type: %v\n", uerr)
	default:
		fmt.Fprintf(s.stderr, "unexpected hook error: %v\n", err)
	}
	s.exit(1)
}
