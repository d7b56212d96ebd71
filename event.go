package cchooks

// Event identifies one of the lifecycle moments Claude Code signals to a
// hook. The set is closed for a given protocol version: dispatch fails with
// an UnknownEventError for any other value.
type Event string

// All event kinds this protocol version recognizes.
const (
	PreToolUseEvent       Event = "PreToolUse"
	PostToolUseEvent      Event = "PostToolUse"
	NotificationEvent     Event = "Notification"
	UserPromptSubmitEvent Event = "UserPromptSubmit"
	StopEvent             Event = "Stop"
	SubagentStopEvent     Event = "SubagentStop"
	PreCompactEvent       Event = "PreCompact"
	SessionStartEvent     Event = "SessionStart"
	SessionEndEvent       Event = "SessionEnd"
)

// Events returns every recognized event kind in declaration order.
func Events() []Event {
	return []Event{
		PreToolUseEvent,
		PostToolUseEvent,
		NotificationEvent,
		UserPromptSubmitEvent,
		StopEvent,
		SubagentStopEvent,
		PreCompactEvent,
		SessionStartEvent,
		SessionEndEvent,
	}
}

// Known reports whether e names a recognized event kind.
func (e Event) Known() bool {
	switch e {
	case PreToolUseEvent, PostToolUseEvent, NotificationEvent,
		UserPromptSubmitEvent, StopEvent, SubagentStopEvent,
		PreCompactEvent, SessionStartEvent, SessionEndEvent:
		return true
	}
	return false
}

func (e Event) String() string { return string(e) }
