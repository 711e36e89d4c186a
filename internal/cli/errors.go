package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	// Config / input errors
	ErrConfigInvalid   = "CONFIG_INVALID"
	ErrTokenMissing    = "TOKEN_MISSING"
	ErrMissingArgument = "MISSING_ARGUMENT"
	ErrInvalidInput    = "INVALID_INPUT"

	// Lookup errors (fatal to the run)
	ErrProjectNotFound = "PROJECT_NOT_FOUND"
	ErrItemNotFound    = "ITEM_NOT_FOUND"

	// Transport errors
	ErrTransport = "TRANSPORT_ERROR"
)

// Warning codes for per-field outcomes that do not fail the run.
const (
	WarnFieldNotFound = "FIELD_NOT_FOUND"
	WarnValueNotFound = "VALUE_NOT_FOUND"
	WarnUpdateFailed  = "UPDATE_FAILED"
)
