package cchooks

// Notification is the context for Notification hooks, raised when Claude
// Code surfaces a message to the user. Notification hooks observe; they
// carry no decision control, so the output offers the simple tier only.
type Notification struct {
	envelope
	out NotificationOutput
}

func newNotification(p Payload, s streams) (*Notification, error) {
	env, err := newEnvelope(p, NotificationEvent, "message", "cwd")
	if err != nil {
		return nil, err
	}
	return &Notification{envelope: env, out: NotificationOutput{Output{streams: s}}}, nil
}

// Message returns the notification text.
func (c *Notification) Message() string { return c.payload.str("message") }

// CWD returns the session's working directory.
func (c *Notification) CWD() string { return c.payload.str("cwd") }

// Output returns the decision surface bound to this context.
func (c *Notification) Output() *NotificationOutput { return &c.out }

// NotificationOutput is the decision surface for Notification hooks.
type NotificationOutput struct {
	Output
}

// Acknowledge reports the notification as handled. Equivalent to
// ExitSuccess.
func (o *NotificationOutput) Acknowledge(msg string) { o.ExitSuccess(msg) }
