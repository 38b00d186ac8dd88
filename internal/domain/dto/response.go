package dto

import (
	"net/http"
	"time"

	"github.com/campuskitchen/lunch-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"name: name is required"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// TodayMenuResponse is the student view of a date's scheduled meals plus
// the resolver's suggestion for the caller's stored preference.
//
// @Description Scheduled meals for a date with the suggested pick
type TodayMenuResponse struct {
	// Date is the calendar date the items are scheduled for.
	Date string `json:"date" example:"2024-01-10"`
	// Items are the meals offered on that date, in schedule order.
	Items []model.MenuItem `json:"items"`
	// Rule is the effective selection rule used for the suggestion.
	Rule string `json:"rule" example:"least calories"`
	// Suggestion is the resolver's pick, absent when nothing is scheduled.
	Suggestion *model.MenuItem `json:"suggestion,omitempty"`
} // @name TodayMenuResponse

// PreferenceResponse is the stored selection rule for a student.
// @Description Stored selection rule for the calling student
type PreferenceResponse struct {
	StudentID string `json:"student_id" example:"42"`
	// Rule is empty when the student has not stored a preference.
	Rule string `json:"rule,omitempty" example:"least calories"`
} // @name PreferenceResponse

// ScheduleResponse is the admin overview of the full schedule.
// @Description All schedule entries joined with their catalog items
type ScheduleResponse struct {
	Entries []model.ScheduledMeal `json:"entries"`
} // @name ScheduleResponse
