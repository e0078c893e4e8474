package types

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}
