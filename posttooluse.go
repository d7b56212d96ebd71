package cchooks

// PostToolUse is the context for PostToolUse hooks, raised immediately
// after a tool call completes. The call already happened; its output can
// only challenge the result or feed context back.
type PostToolUse struct {
	envelope
	out PostToolUseOutput
}

func newPostToolUse(p Payload, s streams) (*PostToolUse, error) {
	env, err := newEnvelope(p, PostToolUseEvent, "tool_name", "tool_input", "tool_response", "cwd")
	if err != nil {
		return nil, err
	}
	return &PostToolUse{envelope: env, out: PostToolUseOutput{Output{streams: s}}}, nil
}

// ToolName returns the name of the tool that ran.
func (c *PostToolUse) ToolName() string { return c.payload.str("tool_name") }

// ToolInput returns the parameters the tool ran with, or nil when
// tool_input holds a non-object value.
func (c *PostToolUse) ToolInput() map[string]any { return c.payload.object("tool_input") }

// ToolResponse returns the tool's result, or nil when tool_response holds
// a non-object value.
func (c *PostToolUse) ToolResponse() map[string]any { return c.payload.object("tool_response") }

// CWD returns the session's working directory.
func (c *PostToolUse) CWD() string { return c.payload.str("cwd") }

// Output returns the decision surface bound to this context.
func (c *PostToolUse) Output() *PostToolUseOutput { return &c.out }

// PostToolUseOutput is the decision surface for PostToolUse hooks.
type PostToolUseOutput struct {
	Output
}

// Accept lets the result stand, emitting a plain continue decision.
func (o *PostToolUseOutput) Accept(opts ...DecisionOption) {
	o.allow(opts)
}

// Challenge blocks the completed call's result; the reason is fed back to
// Claude for further reasoning.
func (o *PostToolUseOutput) Challenge(reason string, opts ...DecisionOption) {
	o.prevent(reason, opts)
}

// AddContext feeds additional context to Claude alongside the tool result.
func (o *PostToolUseOutput) AddContext(text string, opts ...DecisionOption) {
	o.addContext(PostToolUseEvent, text, opts)
}

// Halt stops all processing immediately.
func (o *PostToolUseOutput) Halt(stopReason string, opts ...DecisionOption) {
	o.halt(stopReason, opts)
}
