package constant

// ContextKey is a dedicated type for request-scoped context values so keys
// cannot collide with other packages.
type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	ServiceKey   ContextKey = "internal_service"
)
