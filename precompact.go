package cchooks

// Trigger values a PreCompact payload carries. Manual compaction comes with
// the user's custom instructions; automatic compaction leaves them empty.
const (
	TriggerManual = "manual"
	TriggerAuto   = "auto"
)

// PreCompact is the context for PreCompact hooks, raised before Claude Code
// compacts the transcript. PreCompact hooks cannot make decisions; the
// output offers the simple tier only.
type PreCompact struct {
	envelope
	out PreCompactOutput
}

func newPreCompact(p Payload, s streams) (*PreCompact, error) {
	env, err := newEnvelope(p, PreCompactEvent, "trigger")
	if err != nil {
		return nil, err
	}
	return &PreCompact{envelope: env, out: PreCompactOutput{Output{streams: s}}}, nil
}

// Trigger returns what initiated the compaction, TriggerManual or
// TriggerAuto. Validation is presence-only; values outside the two
// literals come back as-is.
func (c *PreCompact) Trigger() string { return c.payload.str("trigger") }

// CustomInstructions returns the user's compaction instructions, or ""
// when absent or when the compaction is automatic.
func (c *PreCompact) CustomInstructions() string { return c.payload.str("custom_instructions") }

// Output returns the decision surface bound to this context.
func (c *PreCompact) Output() *PreCompactOutput { return &c.out }

// PreCompactOutput is the decision surface for PreCompact hooks.
type PreCompactOutput struct {
	Output
}

// Acknowledge reports the compaction as observed. Equivalent to
// ExitSuccess.
func (o *PreCompactOutput) Acknowledge(msg string) { o.ExitSuccess(msg) }
