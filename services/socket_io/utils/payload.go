package socketio_utils

// Payload shape helpers for inbound socket.io events. Clients send plain
// JSON objects, which the socket.io parser hands us as map[string]interface{};
// anything else is a malformed message and gets dropped at the dispatch
// boundary.

// ParsePayload extracts the event's object payload from the raw handler args.
func ParsePayload(args ...interface{}) (map[string]interface{}, bool) {
	if len(args) < 1 {
		return nil, false
	}
	data, ok := args[0].(map[string]interface{})
	if !ok {
		return nil, false
	}
	return data, true
}

// RequireString reads a required non-empty string field from a payload.
func RequireString(data map[string]interface{}, field string) (string, bool) {
	value, ok := data[field].(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}
