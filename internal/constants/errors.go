package constants

// Error messages used throughout the API handlers
const (
	// Not found errors
	ArtworkNotFound = "artwork not found"
	UserNotFound    = "user not found"
	RecordNotFound  = "transfer record not found"

	// Request errors
	InvalidArtworkID   = "invalid artwork id"
	InvalidUserID      = "invalid user id"
	InvalidChain       = "unsupported chain"
	InvalidRequestBody = "invalid request body"
	InvalidAmount      = "amount must be a decimal number"

	// Session errors
	NotAuthenticated = "authentication required"
	WalletRequired   = "a connected wallet is required"

	InternalServerError = "internal server error"

	// Common string values
	TrueString = "true"
)
