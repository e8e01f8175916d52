package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Planner error messages
	ErrMsgSimulateFailed  = "Failed to simulate layout"
	ErrMsgProduceFailed   = "Failed to run production"
	ErrMsgValueFailed     = "Failed to value harvest"
	ErrMsgCompareFailed   = "Failed to compare layouts"
	ErrMsgNormalizeFailed = "Failed to normalize save code"

	// Catalog error messages
	ErrMsgCropNotFound = "Crop not found"
)

// Operation names used in logs
const (
	OpSimulate  = "Simulate"
	OpProduce   = "Produce"
	OpValue     = "Value"
	OpCompare   = "Compare"
	OpNormalize = "Normalize"
)

// Query parameter names
const (
	QueryParamName = "name"
)
