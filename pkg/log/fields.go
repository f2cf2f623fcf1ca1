package log

// Common field keys.
const (
	FieldKeyQuery    = "query"
	FieldKeyCommand  = "command"
	FieldKeyPosition = "position"
)

// Fields type, used to pass to `WithFields`.
type Fields map[string]any
