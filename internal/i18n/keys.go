// Package i18n provides internationalization support for the lunch service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates invalid login credentials.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyInvalidDate indicates an invalid schedule date.
	ErrKeyInvalidDate = "error.invalid_date"
	// ErrKeyUnknownMenuItem indicates a schedule request for a missing catalog item.
	ErrKeyUnknownMenuItem = "error.unknown_menu_item"
	// ErrKeyUnknownRule indicates an unrecognized preference rule.
	ErrKeyUnknownRule = "error.unknown_rule"
)

// Success message translation keys.
const (
	// SuccessKeyItemScheduled indicates a menu item was scheduled.
	SuccessKeyItemScheduled = "success.item_scheduled"
	// SuccessKeyOrderRecorded indicates an order was appended to the ledger.
	SuccessKeyOrderRecorded = "success.order_recorded"
	// SuccessKeyPreferenceSaved indicates a preference was stored.
	SuccessKeyPreferenceSaved = "success.preference_saved"
)
