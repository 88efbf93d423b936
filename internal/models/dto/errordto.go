package dto

// FieldViolation names one failed validation constraint on one field.
type FieldViolation struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
}

// ErrorResponse is the uniform error body. Violations is populated only for
// validation failures and lists every violated field, not just the first.
type ErrorResponse struct {
	Error      string           `json:"error"`
	Message    string           `json:"message"`
	Violations []FieldViolation `json:"violations,omitempty"`
}

// RateLimitResponse is returned when the login limiter rejects a request.
type RateLimitResponse struct {
	Message string `json:"message"`
}
