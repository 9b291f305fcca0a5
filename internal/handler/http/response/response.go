package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// ErrorBody matches the shape GraphQL clients already parse.
type ErrorBody struct {
	Errors []ErrorDetail `json:"errors"`
}

type ErrorDetail struct {
	Message    string            `json:"message"`
	Extensions map[string]string `json:"extensions,omitempty"`
}

type HealthBody struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("response encode error", "error", err)
	}
}

func JSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	writeJSON(w, statusCode, payload)
}

// Health reports liveness with the current time in UTC.
func Health(w http.ResponseWriter, now time.Time) {
	writeJSON(w, http.StatusOK, HealthBody{
		Status:    "ok",
		Timestamp: now.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	})
}

func Error(w http.ResponseWriter, statusCode int, code, message string) {
	writeJSON(w, statusCode, ErrorBody{
		Errors: []ErrorDetail{{Message: message, Extensions: map[string]string{"code": code}}},
	})
}

// Error responses
func NotFound(w http.ResponseWriter, r *http.Request) {
	Error(w, http.StatusNotFound, "NOT_FOUND", "no route for "+r.Method+" "+r.URL.Path)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	Error(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", r.Method+" is not allowed on "+r.URL.Path)
}
