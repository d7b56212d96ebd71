package cchooks

// PreToolUse is the context for PreToolUse hooks, raised after Claude Code
// prepares tool parameters and before the tool call runs. Its output decides
// whether the call proceeds.
type PreToolUse struct {
	envelope
	out PreToolUseOutput
}

func newPreToolUse(p Payload, s streams) (*PreToolUse, error) {
	env, err := newEnvelope(p, PreToolUseEvent, "tool_name", "tool_input", "cwd")
	if err != nil {
		return nil, err
	}
	return &PreToolUse{envelope: env, out: PreToolUseOutput{Output{streams: s}}}, nil
}

// ToolName returns the name of the tool about to run.
func (c *PreToolUse) ToolName() string { return c.payload.str("tool_name") }

// ToolInput returns the tool parameters, or nil when tool_input holds a
// non-object value.
func (c *PreToolUse) ToolInput() map[string]any { return c.payload.object("tool_input") }

// CWD returns the session's working directory.
func (c *PreToolUse) CWD() string { return c.payload.str("cwd") }

// Output returns the decision surface bound to this context.
func (c *PreToolUse) Output() *PreToolUseOutput { return &c.out }

// PreToolUseOutput is the decision surface for PreToolUse hooks. Beyond the
// shared tiers it carries the three-way permission decision.
type PreToolUseOutput struct {
	Output
}

// Allow permits the pending tool call. The reason is shown to the user.
func (o *PreToolUseOutput) Allow(reason string, opts ...DecisionOption) {
	o.permission("allow", reason, opts)
}

// Deny rejects the pending tool call. The reason is fed back to Claude for
// further reasoning.
func (o *PreToolUseOutput) Deny(reason string, opts ...DecisionOption) {
	o.permission("deny", reason, opts)
}

// Ask defers the pending tool call to the user for confirmation.
func (o *PreToolUseOutput) Ask(reason string, opts ...DecisionOption) {
	o.permission("ask", reason, opts)
}

// Halt stops all processing immediately, not just the pending tool call.
func (o *PreToolUseOutput) Halt(stopReason string, opts ...DecisionOption) {
	o.halt(stopReason, opts)
}

func (o *PreToolUseOutput) permission(verdict, reason string, opts []DecisionOption) {
	o.emit(decision{
		Continue: true,
		HookSpecificOutput: permissionOutput{
			HookEventName:            string(PreToolUseEvent),
			PermissionDecision:       verdict,
			PermissionDecisionReason: reason,
		},
	}, opts)
}
