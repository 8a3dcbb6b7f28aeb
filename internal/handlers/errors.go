package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/luminark/holdings/internal/errors"
)

// writeError maps service errors to status codes: validation 400, not found 404, otherwise 500.
func writeError(w http.ResponseWriter, prefix string, err error) {
	var verr *apperrors.ErrValidation
	var nferr *apperrors.ErrNotFound
	switch {
	case errors.As(err, &verr):
		http.Error(w, prefix+": "+err.Error(), http.StatusBadRequest)
	case errors.As(err, &nferr):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, prefix+": "+err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func notFound(resource, id string) error {
	return &apperrors.ErrNotFound{Resource: resource, ID: id}
}
