package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP headers
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Roles
	RoleUser  = "user"
	RoleAdmin = "admin"

	// Database table names
	TableUsers    = "users"
	TableTickets  = "tickets"
	TableComments = "ticket_comments"
)
