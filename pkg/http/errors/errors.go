package errors

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform error payload. The HTTP status always equals the
// numeric Error code.
type Envelope struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// Respond writes a standardized error envelope for the given code.
func Respond(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(Envelope{
		Success: false,
		Error:   code,
		Message: message,
	})
}

// RespondNotFound writes the 404 envelope.
func RespondNotFound(w http.ResponseWriter) {
	Respond(w, CodeNotFound, MsgNotFound)
}

// RespondUnprocessable writes the 422 envelope.
func RespondUnprocessable(w http.ResponseWriter) {
	Respond(w, CodeUnprocessable, MsgUnprocessable)
}
