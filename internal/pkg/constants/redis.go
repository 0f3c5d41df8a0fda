package constants

// Redis key formats
const (
	KeyRevokedToken     = "auth:revoked:%s" // Format: auth:revoked:{jti}
	KeyAvailableDrivers = "profile:drivers:available"
)
