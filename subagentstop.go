package cchooks

// SubagentStop is the context for SubagentStop hooks, the subagent
// counterpart of Stop.
type SubagentStop struct {
	envelope
	out SubagentStopOutput
}

func newSubagentStop(p Payload, s streams) (*SubagentStop, error) {
	env, err := newEnvelope(p, SubagentStopEvent, "stop_hook_active")
	if err != nil {
		return nil, err
	}
	return &SubagentStop{envelope: env, out: SubagentStopOutput{Output{streams: s}}}, nil
}

// StopHookActive reports whether a stop hook already forced the subagent to
// continue. See Stop.StopHookActive for the coercion contract.
func (c *SubagentStop) StopHookActive() bool { return c.payload.boolean("stop_hook_active") }

// Output returns the decision surface bound to this context.
func (c *SubagentStop) Output() *SubagentStopOutput { return &c.out }

// SubagentStopOutput is the decision surface for SubagentStop hooks.
type SubagentStopOutput struct {
	Output
}

// Allow lets the subagent stop.
func (o *SubagentStopOutput) Allow(opts ...DecisionOption) {
	o.allow(opts)
}

// Prevent keeps the subagent going; the reason is fed back to Claude.
func (o *SubagentStopOutput) Prevent(reason string, opts ...DecisionOption) {
	o.prevent(reason, opts)
}

// Halt stops all processing immediately.
func (o *SubagentStopOutput) Halt(stopReason string, opts ...DecisionOption) {
	o.halt(stopReason, opts)
}
