// Package handlers implements the HTTP handlers for the mtg-price-tracker
// API. Health probes are plain Echo handlers; everything under /api/v1 is
// registered as typed Huma operations.
package handlers

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// MessageBody carries a human-readable result message.
type MessageBody struct {
	Message string `json:"message" example:"Successfully added **Lightning Bolt** to the watchlist." doc:"Result message"`
}
