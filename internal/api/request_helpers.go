package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/roster-api/internal/api/shared"
	"github.com/phrazzld/roster-api/internal/domain"
)

// getPathUUID extracts and parses a UUID path parameter. A missing or
// malformed value yields an error wrapping domain.ErrInvalidID.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, fmt.Errorf("%w: %s is required", domain.ErrInvalidID, paramName)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s has invalid format", domain.ErrInvalidID, paramName)
	}
	return id, nil
}

// decodeRequest decodes and validates a JSON body into v, writing the error
// response itself and returning false on failure.
func decodeRequest(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		if fields := shared.FieldErrors(err); fields != nil {
			shared.RespondWithValidationErrors(w, r, fields)
			return false
		}
		HandleAPIError(w, r, err, "")
		return false
	}
	return true
}

// respondWithTypeErrors reports fields whose JSON value had the wrong type
// together with the failures of the pure field validation run on the rest of
// the request. A type error replaces any other message for its field.
func respondWithTypeErrors(w http.ResponseWriter, r *http.Request, typeErr, fieldErr error) {
	fields := make(map[string][]string)
	for _, err := range []error{fieldErr, typeErr} {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for field, msgs := range ve.Fields {
				fields[field] = msgs
			}
		}
	}
	shared.RespondWithValidationErrors(w, r, fields)
}
