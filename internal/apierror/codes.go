package apierror

// Error type URIs following the urn:vitalsync:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:vitalsync:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:vitalsync:error:not_found"

	// TypeConflict indicates a resource conflict (409)
	TypeConflict = "urn:vitalsync:error:conflict"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:vitalsync:error:unauthorized"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:vitalsync:error:internal"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:vitalsync:error:bad_request"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation   = "Validation Error"
	TitleNotFound     = "Resource Not Found"
	TitleConflict     = "Resource Conflict"
	TitleUnauthorized = "Authentication Required"
	TitleInternal     = "Internal Server Error"
	TitleBadRequest   = "Bad Request"
)
