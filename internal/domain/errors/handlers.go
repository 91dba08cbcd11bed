package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Error code, e.g., "LEAD_NOT_FOUND"
	Kind    Kind   `json:"kind"`              // Failure class
	Message string `json:"message"`           // Human readable message
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// NewErrorResponse builds an error envelope from any error.
func NewErrorResponse(err error, requestID string) *ErrorResponse {
	info := &ErrorInfo{
		Code:    CodeOf(err),
		Kind:    KindOf(err),
		Message: err.Error(),
	}

	if engineErr, ok := err.(EngineError); ok && engineErr.Details() != "" {
		info.Details = engineErr.Details()
	}

	return &ErrorResponse{
		Error: info,
		Meta:  &MetaInfo{RequestID: requestID},
	}
}
