package cchooks

// Source values a SessionStart payload carries.
const (
	SourceStartup = "startup"
	SourceResume  = "resume"
	SourceClear   = "clear"
)

// SessionStart is the context for SessionStart hooks, raised when Claude
// Code starts or resumes a session. SessionStart hooks cannot block; they
// load context into the new session or observe.
type SessionStart struct {
	envelope
	out SessionStartOutput
}

func newSessionStart(p Payload, s streams) (*SessionStart, error) {
	env, err := newEnvelope(p, SessionStartEvent, "source")
	if err != nil {
		return nil, err
	}
	return &SessionStart{envelope: env, out: SessionStartOutput{Output{streams: s}}}, nil
}

// Source returns how the session began: SourceStartup, SourceResume, or
// SourceClear. Presence-only validation; other values come back as-is.
func (c *SessionStart) Source() string { return c.payload.str("source") }

// Output returns the decision surface bound to this context.
func (c *SessionStart) Output() *SessionStartOutput { return &c.out }

// SessionStartOutput is the decision surface for SessionStart hooks.
type SessionStartOutput struct {
	Output
}

// AddContext loads additional context into the starting session.
func (o *SessionStartOutput) AddContext(text string, opts ...DecisionOption) {
	o.addContext(SessionStartEvent, text, opts)
}
