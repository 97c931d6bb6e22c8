package dto

import "time"

// ErrorResponse is the standardized JSON error envelope returned by every
// failing endpoint.
//
// Fields:
//   - Message: human-readable description of the failure.
//   - ErrorDetails: underlying error text, when one exists.
//   - Timestamp: moment the response was built.
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid date range"`
	ErrorDetails string    `json:"error,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so an ErrorResponse can travel
// through gin's error collector.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
