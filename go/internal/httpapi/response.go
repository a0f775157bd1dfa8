// Package httpapi holds the HTTP plumbing shared by the resource services:
// JSON responses, error-to-status mapping, request decoding and middleware.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/mcdev12/workout-api/go/internal/apperrors"
	"github.com/rs/zerolog"
)

// ErrorBody is the payload of every failed response
type ErrorBody struct {
	Detail string `json:"detail"`
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// headers are already sent, nothing useful to do on failure
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a 200 response.
func OK(w http.ResponseWriter, v any) {
	JSON(w, http.StatusOK, v)
}

// Created writes a 201 response.
func Created(w http.ResponseWriter, v any) {
	JSON(w, http.StatusCreated, v)
}

// NoContent writes a 204 response without a body.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Detail writes an error body with the given status.
func Detail(w http.ResponseWriter, status int, detail string) {
	JSON(w, status, ErrorBody{Detail: detail})
}

// StatusFor maps an app error onto the HTTP status it is reported with.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrReferenceNotFound):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusSeeOther
	default:
		return http.StatusInternalServerError
	}
}

// WriteError classifies err and writes the matching detail response.
// Internal errors are logged through the request logger and reported with a
// generic message.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		Detail(w, status, "Ocorreu um erro ao processar a requisição")
		return
	}

	Detail(w, status, detailFor(err))
}

// detailFor returns the message of the innermost typed error so the wrapping
// context added on the way up does not leak into responses.
func detailFor(err error) string {
	var (
		notFound   *apperrors.NotFoundError
		reference  *apperrors.ReferenceError
		conflict   *apperrors.ConflictError
		validation *apperrors.ValidationError
	)
	switch {
	case errors.As(err, &validation):
		return validation.Error()
	case errors.As(err, &reference):
		return reference.Error()
	case errors.As(err, &conflict):
		return conflict.Error()
	case errors.As(err, &notFound):
		return notFound.Error()
	default:
		return err.Error()
	}
}

// DecodeJSON decodes the request body into v. Malformed bodies are reported
// as validation errors.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return apperrors.NewValidationError("body", "request body is required")
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.NewValidationError("body", fmt.Sprintf("invalid JSON: %v", err))
	}
	return nil
}

// PathUUID parses the named path value as a UUID.
func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, apperrors.NewValidationError(name, "must be a valid UUID")
	}
	return id, nil
}
