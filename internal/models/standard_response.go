package models

import "time"

// APIVersion is reported in every response envelope.
const APIVersion = "v1"

// StandardResponse is the envelope returned by every API endpoint
// @Description Unified response envelope
type StandardResponse struct {
	// Outcome of the operation (success, error)
	Status string `json:"status" example:"success"`

	// Human readable description of the outcome
	Message string `json:"message" example:"CNPJ is valid"`

	// Payload, only when status = success
	Data interface{} `json:"data,omitempty"`

	// Error details, only when status = error
	Error *ErrorDetails `json:"error,omitempty"`

	Meta *ResponseMeta `json:"meta"`
}

// ErrorDetails describes a failed operation
type ErrorDetails struct {
	Code    string      `json:"code" example:"INVALID_CNPJ"`
	Message string      `json:"message" example:"check digits do not match"`
	Details interface{} `json:"details,omitempty"`
}

// ResponseMeta carries response metadata
type ResponseMeta struct {
	Timestamp     time.Time `json:"timestamp"`
	ExecutionTime string    `json:"execution_time,omitempty" example:"1.234ms"`
	RequestID     string    `json:"request_id,omitempty"`
	Version       string    `json:"version,omitempty" example:"v1"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

const (
	ErrorCodeInvalidCNPJ     = "INVALID_CNPJ"
	ErrorCodeInvalidGeometry = "INVALID_GEOMETRY"
	ErrorCodeInvalidRequest  = "INVALID_REQUEST"
	ErrorCodeBatchTooLarge   = "BATCH_TOO_LARGE"
	ErrorCodeRateLimit       = "RATE_LIMIT_EXCEEDED"
	ErrorCodeNotFound        = "NOT_FOUND"
	ErrorCodeInternalError   = "INTERNAL_ERROR"
)

// NewSuccessResponse builds a success envelope
func NewSuccessResponse(message string, data interface{}) *StandardResponse {
	return &StandardResponse{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
		Meta:    newMeta(),
	}
}

// NewErrorResponse builds an error envelope
func NewErrorResponse(code, message string, details interface{}) *StandardResponse {
	return &StandardResponse{
		Status:  StatusError,
		Message: "Operation failed",
		Error: &ErrorDetails{
			Code:    code,
			Message: message,
			Details: details,
		},
		Meta: newMeta(),
	}
}

func newMeta() *ResponseMeta {
	return &ResponseMeta{
		Timestamp: time.Now(),
		Version:   APIVersion,
	}
}

// SetExecutionTime records how long the operation took
func (r *StandardResponse) SetExecutionTime(duration time.Duration) {
	if r.Meta != nil {
		r.Meta.ExecutionTime = duration.String()
	}
}

// SetRequestID records the request ID for tracing
func (r *StandardResponse) SetRequestID(requestID string) {
	if r.Meta != nil {
		r.Meta.RequestID = requestID
	}
}
