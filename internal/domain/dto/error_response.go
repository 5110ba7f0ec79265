package dto

import "time"

// ErrorResponse is the standard JSON error body returned by every endpoint.
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid date range"`
	ErrorDetails string    `json:"error,omitempty" example:"start is after end"`
	Timestamp    time.Time `json:"timestamp" example:"2025-01-01T12:00:00Z"`
}

// Error implements the error interface so the response can travel through
// gin's error chain unchanged.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current UTC time.
// err may be nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
