package cchooks

// Stop is the context for Stop hooks, raised when the main agent is about
// to finish responding. Its output decides whether Claude actually stops.
type Stop struct {
	envelope
	out StopOutput
}

func newStop(p Payload, s streams) (*Stop, error) {
	env, err := newEnvelope(p, StopEvent, "stop_hook_active")
	if err != nil {
		return nil, err
	}
	return &Stop{envelope: env, out: StopOutput{Output{streams: s}}}, nil
}

// StopHookActive reports whether a stop hook already forced Claude to
// continue. Hooks check this to avoid blocking the stop in a loop. The
// value is coerced from whatever the payload carries; validation only
// guarantees the field is present.
func (c *Stop) StopHookActive() bool { return c.payload.boolean("stop_hook_active") }

// Output returns the decision surface bound to this context.
func (c *Stop) Output() *StopOutput { return &c.out }

// StopOutput is the decision surface for Stop hooks.
type StopOutput struct {
	Output
}

// Allow lets Claude stop, emitting a plain continue decision with no
// decision key.
func (o *StopOutput) Allow(opts ...DecisionOption) {
	o.allow(opts)
}

// Prevent keeps Claude going: the host continues running but the stop that
// raised this event does not complete. The reason is fed back to Claude.
func (o *StopOutput) Prevent(reason string, opts ...DecisionOption) {
	o.prevent(reason, opts)
}

// Halt stops all processing immediately.
func (o *StopOutput) Halt(stopReason string, opts ...DecisionOption) {
	o.halt(stopReason, opts)
}
