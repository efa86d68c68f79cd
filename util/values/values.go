package values

type contextKey string

// Response statuses. util.StatusCode maps each one to an HTTP status code.
const (
	Success          = "success"
	Created          = "created"
	Error            = "error"
	BadRequestBody   = "bad-request"
	Unprocessable    = "unprocessable"
	NotAllowed       = "not-allowed"
	Conflict         = "conflict"
	NotFound         = "not-found"
	NotAuthorised    = "not-authorised"
	TokenExpired     = "token-expired"
	MethodNotAllowed = "method-not-allowed"
)

const (
	SystemErr = "something went wrong"

	HeaderRequestSource = "X-Request-Source"
	HeaderRequestID     = "X-Request-ID"

	DefaultRequestSource = "web"
)

const (
	ContextTracingKey  contextKey = "tracing"
	ContextIdentityKey contextKey = "identity"
)
