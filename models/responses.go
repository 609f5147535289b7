package models

// Response is the success envelope of every JSON endpoint.
// Clients read the payload from Data.
type Response[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

// ErrorResponse is the failure envelope written by the error responder.
// Its field shape is identical for every failure kind.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	Method     string `json:"method"`

	// Stack is only populated in development mode.
	Stack string `json:"stack,omitempty"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status string       `json:"status"`
	Build  AppBuildInfo `json:"build"`
}
