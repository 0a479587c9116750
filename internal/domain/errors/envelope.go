package errors

// ErrorInfo is the error body of the API envelope. The locator CLI decodes the
// same struct, so Retryable is what lets it tell a lost race from a bad request.
type ErrorInfo struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// SuccessResponse wraps every JSON payload
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse wraps every JSON failure
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// retryableCodes fail for reasons outside the request itself: a concurrent
// availability write won, or the database or a dependency was unavailable.
var retryableCodes = map[string]bool{
	"WRITE_CONFLICT":          true,
	"QUERY_FAILED":            true,
	"TRANSACTION_FAILED":      true,
	"DATABASE_EXECUTE_FAILED": true,
	"SERVICE_UNAVAILABLE":     true,
}

// IsRetryable reports whether a request failing with code may succeed unchanged.
func IsRetryable(code string) bool {
	return retryableCodes[code]
}

// NewErrorInfo builds the error body for code.
func NewErrorInfo(code, message string, details any) *ErrorInfo {
	return &ErrorInfo{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: IsRetryable(code),
	}
}
