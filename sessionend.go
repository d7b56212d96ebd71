package cchooks

// Reason values a SessionEnd payload carries.
const (
	ReasonClear           = "clear"
	ReasonLogout          = "logout"
	ReasonPromptInputExit = "prompt_input_exit"
	ReasonOther           = "other"
)

// SessionEnd is the context for SessionEnd hooks, raised when a Claude Code
// session ends. The session is already over; the output offers the simple
// tier only, for cleanup bookkeeping.
type SessionEnd struct {
	envelope
	out SessionEndOutput
}

func newSessionEnd(p Payload, s streams) (*SessionEnd, error) {
	env, err := newEnvelope(p, SessionEndEvent, "reason")
	if err != nil {
		return nil, err
	}
	return &SessionEnd{envelope: env, out: SessionEndOutput{Output{streams: s}}}, nil
}

// Reason returns why the session ended: ReasonClear, ReasonLogout,
// ReasonPromptInputExit, or ReasonOther. Presence-only validation; other
// values come back as-is.
func (c *SessionEnd) Reason() string { return c.payload.str("reason") }

// Output returns the decision surface bound to this context.
func (c *SessionEnd) Output() *SessionEndOutput { return &c.out }

// SessionEndOutput is the decision surface for SessionEnd hooks.
type SessionEndOutput struct {
	Output
}
