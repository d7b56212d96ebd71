package cchooks

// commonFields are required on every payload regardless of event kind.
var commonFields = []string{"session_id", "transcript_path", "hook_event_name"}

// missingFields returns the names of required fields absent from the
// payload, in declaration order. Presence is the only criterion: a field
// set to null or "" still counts as present. The caller collects results
// across passes so a payload missing both common and kind-specific fields
// reports everything at once.
func missingFields(p Payload, fields ...string) []string {
	var missing []string
	for _, f := range fields {
		if !p.HasField(f) {
			missing = append(missing, f)
		}
	}
	return missing
}
