package dto

// ErrorResponse is the envelope of every failed request
// @Description Error envelope
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// HealthResponse is returned by GET /healthz
type HealthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}
