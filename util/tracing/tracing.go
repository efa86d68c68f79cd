package tracing

import "log/slog"

// Context identifies a single inbound request across log lines.
type Context struct {
	RequestID     string
	RequestSource string
}

func (c Context) LogAttrs() []any {
	return []any{
		slog.String("request_id", c.RequestID),
		slog.String("request_source", c.RequestSource),
	}
}
