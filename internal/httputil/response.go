package httputil

import (
	"encoding/json"
	"net/http"
)

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Every failure body carries a "message" key: a string for single-cause
// errors, a list of field errors for validation failures.
type messageBody struct {
	Message any `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, messageBody{Message: message})
}

func WriteFieldErrors(w http.ResponseWriter, status int, errs []FieldError) {
	WriteJSON(w, status, messageBody{Message: errs})
}
