// Package api defines request and response types shared across the HTTP
// transport layer.
package api

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON body returned for requests that succeed
// without a resource payload.
type MessageResponse struct {
	Message string `json:"message"`
}
