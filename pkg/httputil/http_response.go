package httputil

import (
	"net/http"

	"github.com/bytedance/sonic"
)

// ErrorResponse shares "success" and "error" with ValidationResponse, so clients
// read every failure the same way. Code repeats the HTTP status.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ValidationResponse is the body of 422 answers. Clients show Error as is.
type ValidationResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	resp := ErrorResponse{
		Code:  statusCode,
		Error: message,
	}
	if details != nil {
		resp.Details = details.Error()
	}
	writeJSON(w, statusCode, resp, sonic.ConfigFastest)
}

func WriteValidationError(w http.ResponseWriter, message string) {
	WriteJSONResponse(w, http.StatusUnprocessableEntity, ValidationResponse{
		Success: false,
		Error:   message,
	})
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	writeJSON(w, statusCode, body, sonic.ConfigDefault)
}

func writeJSON(w http.ResponseWriter, statusCode int, body any, api sonic.API) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if body != nil {
		api.NewEncoder(w).Encode(body)
	}
}
