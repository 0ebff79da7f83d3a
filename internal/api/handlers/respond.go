package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the uniform error payload of the API
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondJSON writes v as a JSON response with the given status
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondBadRequest writes a 400 with the given message
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{
		Code:    "BAD_REQUEST",
		Message: message,
	})
}

// RespondNotFound writes a 404 with the given message
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusNotFound, ErrorResponse{
		Code:    "NOT_FOUND",
		Message: message,
	})
}

// RespondInternalError writes a 500 with a generic message
func RespondInternalError(w http.ResponseWriter) {
	RespondJSON(w, http.StatusInternalServerError, ErrorResponse{
		Code:    "INTERNAL_ERROR",
		Message: "erro interno do servidor",
	})
}
