package middleware

import (
	"encoding/json"
	"net/http"
)

// errorBody matches the error shape written by the API handlers.
type errorBody struct {
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{
		Error:     code,
		Message:   message,
		RequestID: GetRequestID(r.Context()),
	})
}
