package cchooks

// UserPromptSubmit is the context for UserPromptSubmit hooks, raised when
// the user submits a prompt and before Claude processes it.
type UserPromptSubmit struct {
	envelope
	out UserPromptSubmitOutput
}

func newUserPromptSubmit(p Payload, s streams) (*UserPromptSubmit, error) {
	env, err := newEnvelope(p, UserPromptSubmitEvent, "prompt", "cwd")
	if err != nil {
		return nil, err
	}
	return &UserPromptSubmit{envelope: env, out: UserPromptSubmitOutput{Output{streams: s}}}, nil
}

// Prompt returns the submitted prompt text.
func (c *UserPromptSubmit) Prompt() string { return c.payload.str("prompt") }

// CWD returns the session's working directory.
func (c *UserPromptSubmit) CWD() string { return c.payload.str("cwd") }

// Output returns the decision surface bound to this context.
func (c *UserPromptSubmit) Output() *UserPromptSubmitOutput { return &c.out }

// UserPromptSubmitOutput is the decision surface for UserPromptSubmit
// hooks.
type UserPromptSubmitOutput struct {
	Output
}

// Allow lets the prompt through unchanged.
func (o *UserPromptSubmitOutput) Allow(opts ...DecisionOption) {
	o.allow(opts)
}

// Block erases the submitted prompt from context; the reason is shown to
// the user.
func (o *UserPromptSubmitOutput) Block(reason string, opts ...DecisionOption) {
	o.prevent(reason, opts)
}

// AddContext prepends additional context to the prompt before Claude sees
// it. An empty text still emits the hookSpecificOutput block, with
// additionalContext omitted.
func (o *UserPromptSubmitOutput) AddContext(text string, opts ...DecisionOption) {
	o.addContext(UserPromptSubmitEvent, text, opts)
}

// Halt stops all processing immediately.
func (o *UserPromptSubmitOutput) Halt(stopReason string, opts ...DecisionOption) {
	o.halt(stopReason, opts)
}
