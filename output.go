package cchooks

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// streams carries the process surface a terminal method writes to. Defaults
// bind the real process channels; tests inject recorders via Options.
type streams struct {
	stdout io.Writer
	stderr io.Writer
	exit   func(code int)
}

func defaultStreams() streams {
	return streams{stdout: os.Stdout, stderr: os.Stderr, exit: os.Exit}
}

// Option configures the process surface bound to a context's output.
type Option func(*streams)

// WithStdout redirects the output channel (decision JSON and informational
// text). Used by tests to capture what a terminal method emits.
func WithStdout(w io.Writer) Option {
	return func(s *streams) { s.stdout = w }
}

// WithStderr redirects the error channel.
func WithStderr(w io.Writer) Option {
	return func(s *streams) { s.stderr = w }
}

// WithExitFunc replaces os.Exit. The replacement should not return; if it
// does, the calling terminal method returns to its caller, which the
// protocol otherwise never allows.
func WithExitFunc(fn func(code int)) Option {
	return func(s *streams) { s.exit = fn }
}

// decision is the JSON envelope advanced-tier methods emit. Key rules are
// exact: "continue" is always present, everything else appears only when
// the decision calls for it. The string keys are pointers because their
// presence is decided by the emitting method, never by value emptiness:
// Prevent("") still carries "reason", Halt("") still carries "stopReason".
type decision struct {
	Continue           bool    `json:"continue"`
	StopReason         *string `json:"stopReason,omitempty"`
	Decision           string  `json:"decision,omitempty"`
	Reason             *string `json:"reason,omitempty"`
	SuppressOutput     bool    `json:"suppressOutput,omitempty"`
	SystemMessage      *string `json:"systemMessage,omitempty"`
	HookSpecificOutput any     `json:"hookSpecificOutput,omitempty"`
}

// permissionOutput is the hookSpecificOutput block of a PreToolUse
// permission decision. The reason key stays present even when empty.
type permissionOutput struct {
	HookEventName            string `json:"hookEventName"`
	PermissionDecision       string `json:"permissionDecision"`
	PermissionDecisionReason string `json:"permissionDecisionReason"`
}

// contextOutput is the hookSpecificOutput block of an additional-context
// emission. additionalContext is omitted when not supplied.
type contextOutput struct {
	HookEventName     string `json:"hookEventName"`
	AdditionalContext string `json:"additionalContext,omitempty"`
}

// DecisionOption adds optional top-level keys to a decision document.
type DecisionOption func(*decision)

// WithSuppressOutput sets suppressOutput, hiding the hook's stdout from
// transcript mode.
func WithSuppressOutput() DecisionOption {
	return func(d *decision) { d.SuppressOutput = true }
}

// WithSystemMessage attaches an optional warning shown to the user. The
// key is written whenever the option is applied, even for an empty message.
func WithSystemMessage(msg string) DecisionOption {
	return func(d *decision) { d.SystemMessage = &msg }
}

// Output is the terminal decision surface every hook kind shares. Each
// context owns exactly one Output, created with the context; every method
// on it writes to the process surface and terminates, so a hook invokes
// exactly one method per lifetime. Kind-specific surfaces embed Output and
// add the advanced-tier methods that apply to their kind.
type Output struct {
	streams
}

// ExitSuccess writes msg to the output channel and terminates with exit
// code 0. Simple tier: the host reads the exit code and raw text, no
// decision JSON is emitted.
func (o *Output) ExitSuccess(msg string) {
	if msg != "" {
		fmt.Fprintln(o.stdout, msg)
	}
	o.exit(0)
}

// ExitBlock writes msg to the error channel and terminates with exit code
// 2, the blocking outcome of the simple tier.
func (o *Output) ExitBlock(msg string) {
	fmt.Fprintln(o.stderr, msg)
	o.exit(2)
}

// emit writes the decision document to the output channel and terminates
// with exit code 0. The host parses the JSON to learn the real decision,
// which is why the code is 0 even for a blocking decision. A write failure
// on an already-open standard channel is a process-level fault, not a
// protocol error, so the error is discarded.
func (o *Output) emit(d decision, opts []DecisionOption) {
	for _, opt := range opts {
		opt(&d)
	}
	_ = json.NewEncoder(o.stdout).Encode(d)
	o.exit(0)
}

// allow emits {"continue": true}. The decision key is absent entirely, not
// null.
func (o *Output) allow(opts []DecisionOption) {
	o.emit(decision{Continue: true}, opts)
}

// prevent emits an explicit block: the host keeps running but the action
// that raised the event does not complete.
func (o *Output) prevent(reason string, opts []DecisionOption) {
	o.emit(decision{Continue: true, Decision: "block", Reason: &reason}, opts)
}

// halt emits {"continue": false} with the stop reason, stopping all
// processing.
func (o *Output) halt(stopReason string, opts []DecisionOption) {
	o.emit(decision{Continue: false, StopReason: &stopReason}, opts)
}

// addContext emits a hookSpecificOutput block carrying additional context
// for the named event.
func (o *Output) addContext(event Event, text string, opts []DecisionOption) {
	o.emit(decision{
		Continue: true,
		HookSpecificOutput: contextOutput{
			HookEventName:     string(event),
			AdditionalContext: text,
		},
	}, opts)
}
