// Package views holds the JSON envelopes written by the HTTP API.
package views

import (
	"encoding/json"
	"net/http"
	"time"
)

// Response wraps every successful API payload.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is written for failed requests.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// HealthResponse is written by the health check.
type HealthResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// CreateTaskRequest is the body of POST /api/tasks.
type CreateTaskRequest struct {
	Title string `json:"title"`
}

// FilterRequest is the body of PUT /api/filter.
type FilterRequest struct {
	Filter string `json:"filter"`
}

// WriteJSON writes v with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// SendSuccess writes data inside a Response envelope.
func SendSuccess(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, Response{Success: true, Data: data})
}

// SendMessage writes a Response carrying data and a message.
func SendMessage(w http.ResponseWriter, status int, data any, message string) {
	WriteJSON(w, status, Response{Success: true, Data: data, Message: message})
}

// SendError writes an ErrorResponse.
func SendError(w http.ResponseWriter, message string, status int) {
	WriteJSON(w, status, ErrorResponse{Success: false, Message: message})
}

// SendFieldErrors writes an ErrorResponse with per-field messages.
func SendFieldErrors(w http.ResponseWriter, message string, status int, fields map[string]string) {
	WriteJSON(w, status, ErrorResponse{Success: false, Message: message, Fields: fields})
}
