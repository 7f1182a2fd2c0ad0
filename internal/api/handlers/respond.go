package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rsaisankalp/ashram-assert/internal/api/dto"
	"github.com/rsaisankalp/ashram-assert/internal/inventory"
	"github.com/rsaisankalp/ashram-assert/internal/validate"
)

func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps service error kinds onto HTTP statuses. Anything
// unrecognized is a 500 with a generic body.
func writeError(w http.ResponseWriter, err error) {
	var (
		verr         *validate.Error
		authnErr     *inventory.AuthenticationError
		authzErr     *inventory.AuthorizationError
		notFound     *inventory.NotFoundError
		conflict     *inventory.ConflictError
		precondition *inventory.PreconditionError
	)

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation failed",
			Details: map[string]string{verr.Field: verr.Reason},
		})
	case errors.As(err, &authnErr):
		writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
	case errors.As(err, &authzErr):
		writeJSON(w, http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})
	case errors.As(err, &notFound):
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.As(err, &conflict):
		writeJSON(w, http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.As(err, &precondition):
		writeJSON(w, http.StatusPreconditionFailed, dto.ErrorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
	}
}
