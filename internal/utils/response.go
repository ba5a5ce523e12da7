package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"TRAVELDIARY_BACK-END/internal/dto"
)

// MaxRequestBodyBytes bounds request bodies read by ReadBody and DecodeJSONRequest
const MaxRequestBodyBytes = 1 << 20

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[http] failed to encode response: %v", err)
	}
}

// WriteErrorResponse writes a dto.ErrorResponse with the given status
func WriteErrorResponse(w http.ResponseWriter, status int, errMsg, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: errMsg, Message: message})
}

// WriteErrorDetails writes a dto.ErrorResponse carrying structured details
func WriteErrorDetails(w http.ResponseWriter, status int, errMsg, message string, details any) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: errMsg, Message: message, Details: details})
}

// ReadBody reads the request body up to MaxRequestBodyBytes. On failure it
// writes a 400 response and returns the error.
func ReadBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteErrorResponse(w, http.StatusRequestEntityTooLarge, "Request too large", fmt.Sprintf("Body must not exceed %d bytes", MaxRequestBodyBytes))
			return nil, err
		}
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request", "Failed to read request body")
		return nil, err
	}
	return body, nil
}

// DecodeJSONRequest decodes the JSON request body into dst. On failure it
// writes a 400 response and returns the error.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	body, err := ReadBody(w, r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request", "Invalid JSON format")
		return err
	}
	return nil
}
