package common

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal server error"`
	Details string `json:"details,omitempty" example:"failed to fetch transcript: Not Found"`
}

// HealthResponse is returned by the health check endpoint
type HealthResponse struct {
	Status      string `json:"status" example:"ok"`
	Environment string `json:"environment" example:"production"`
}
