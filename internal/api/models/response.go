package models

// MessageResponse is the single-message body used by the gate and most handlers
type MessageResponse struct {
	Msg string `json:"msg" example:"Token is not valid"`
}

// FieldError is one entry of a validation error list
type FieldError struct {
	Msg      string `json:"msg" example:"Please enter a valid email"`
	Param    string `json:"param,omitempty" example:"email"`
	Location string `json:"location,omitempty" example:"body"`
}

// ErrorListResponse carries request validation failures
type ErrorListResponse struct {
	Errors []FieldError `json:"errors"`
}

// TokenResponse is returned by registration and login
type TokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// HealthResponse represents the health endpoint body
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Database  string `json:"database" example:"connected"`
	Timestamp int64  `json:"timestamp" example:"1640995200"`
	Version   string `json:"version" example:"1.0.0"`
}

// NewErrorList builds an error list of bare messages
func NewErrorList(messages ...string) ErrorListResponse {
	errs := make([]FieldError, 0, len(messages))
	for _, msg := range messages {
		errs = append(errs, FieldError{Msg: msg})
	}
	return ErrorListResponse{Errors: errs}
}
