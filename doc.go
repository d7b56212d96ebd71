// Package cchooks implements the Claude Code hook protocol: it turns the
// JSON event a hook process receives on stdin into a typed context, and
// encodes the hook's reaction as the exit code and JSON document the host
// reads back.
//
// A hook is a short-lived process. Claude Code starts it at a lifecycle
// moment (before a tool call, on stop, on prompt submit, ...), writes one
// JSON payload to its stdin, and inspects the exit code — and, for some
// codes, stdout — to decide whether to continue, block, or surface a
// message. One process handles exactly one event and terminates.
//
// # Quick Start
//
// Build the context from stdin, switch on the kind, and invoke exactly one
// terminal method on its output:
//
//	ctx, err := cchooks.FromStdin()
//	if err != nil {
//	    cchooks.HandleError(err)
//	}
//
//	switch c := ctx.(type) {
//	case *cchooks.PreToolUse:
//	    if c.ToolName() == "Bash" {
//	        c.Output().Ask("shell command needs confirmation")
//	    }
//	    c.Output().Allow("")
//	case *cchooks.Stop:
//	    if !c.StopHookActive() {
//	        c.Output().Prevent("still working")
//	    }
//	    c.Output().ExitSuccess("done")
//	}
//
// # Contexts
//
// Each event kind has its own context type carrying the validated payload:
// PreToolUse, PostToolUse, Notification, UserPromptSubmit, Stop,
// SubagentStop, PreCompact, SessionStart, and SessionEnd. Construction
// validates the common envelope (session_id, transcript_path,
// hook_event_name) together with the kind's required fields and reports
// every missing field in a single ValidationError. Validation checks
// presence only — a field set to null or "" passes — and unknown extra
// fields are ignored, reachable through Context.Field.
//
// # Outputs
//
// Every context exclusively owns one output, created with it. Output
// methods are terminal: they write to the process surface and exit, so a
// hook calls exactly one per lifetime.
//
// The simple tier speaks in exit codes and raw text:
//
//	c.Output().ExitSuccess("formatted 3 files") // text to stdout, exit 0
//	c.Output().ExitBlock("push to main denied") // text to stderr, exit 2
//
// The advanced tier emits a decision document as JSON on stdout and exits
// 0; the host parses the JSON to learn the real decision, which is why even
// a blocking decision exits 0:
//
//	c.Output().Allow()          // {"continue":true}
//	c.Output().Prevent("busy")  // {"continue":true,"decision":"block","reason":"busy"}
//	c.Output().Halt("shutdown") // {"continue":false,"stopReason":"shutdown"}
//
// Kind-specific decisions live on kind-specific output types, so calling a
// method that does not apply to the owning kind is a compile error:
// PreToolUse carries the Allow/Deny/Ask permission decision,
// UserPromptSubmit and SessionStart carry AddContext.
//
// Decision options add the optional top-level keys:
//
//	c.Output().Prevent("busy", cchooks.WithSuppressOutput())
//
// # Exit Codes
//
// The protocol defines exactly two codes: 0 (allow/continue, including every
// JSON decision) and 2 (block via the simple tier). HandleError uses 1 to
// report that the hook failed before deciding anything; that code is the
// caller's error surface, not a protocol decision.
//
// # Error Handling
//
// The factories fail with three distinct error kinds, matched via
// errors.As: *ParseError (input is not a JSON object), *ValidationError
// (missing required fields or an expected-kind mismatch, with the complete
// field list in one message), and *UnknownEventError (hook_event_name
// outside the recognized kinds).
//
// # Testing Hooks
//
// Terminal methods write through an injectable process surface. Tests pass
// WithStdout, WithStderr, and WithExitFunc to capture a hook's reaction
// without forking:
//
//	var out bytes.Buffer
//	var code int
//	ctx, _ := cchooks.Parse(payload,
//	    cchooks.WithStdout(&out),
//	    cchooks.WithExitFunc(func(c int) { code = c }),
//	)
package cchooks
