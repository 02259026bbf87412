package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/stream-console/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteEnvelope wraps data into the {"status","message","data"} envelope and
// writes it with WriteJSON. status is "success" below 400 and "error" otherwise.
func WriteEnvelope(w http.ResponseWriter, statusCode int, message string, data any) (int, error) {
	status := "success"
	if statusCode >= http.StatusBadRequest {
		status = "error"
	}

	return WriteJSON(w, models.Envelope[any]{Status: status, Message: message, Data: data}, statusCode)
}
