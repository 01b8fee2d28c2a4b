package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/fisherfans/api/internal/model"
)

// maxBodyBytes caps JSON request bodies
const maxBodyBytes = 1 << 20

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteError writes an error response using RFC 9457 Problem Details
func WriteError(w http.ResponseWriter, err *model.ProblemDetails) {
	err.WriteJSON(w)
}

// DecodeJSON decodes a JSON request body into v, rejecting unknown fields
// and trailing data
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return err
	}
	if decoder.More() {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

// WriteNoContent writes a 204 No Content response
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// validatable is implemented by every request payload
type validatable interface {
	Validate() []model.FieldError
}

// decodeValid decodes and validates a request body, writing the 400 or 422
// itself when it fails
func decodeValid(w http.ResponseWriter, r *http.Request, req validatable) bool {
	if err := DecodeJSON(r, req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body: "+err.Error()))
		return false
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return false
	}
	return true
}
