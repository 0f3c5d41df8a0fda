package constants

// Echo context keys
const (
	ContextKeyPrincipal = "principal"
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
)
