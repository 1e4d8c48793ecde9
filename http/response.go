package http

import (
	"errors"
	"log/slog"
	"net/http"

	"nosvault"
)

// WriteError writes a plain-text error response. Bodies name the
// failure category only; clients must not parse them.
func WriteError(w http.ResponseWriter, code int, message string) {
	http.Error(w, message, code)
}

// HandleError maps a service error onto a status code and a generic
// plain-text body. The underlying detail is logged and never surfaced;
// in particular an unauthenticated caller cannot learn which part of
// credential verification failed.
func HandleError(w http.ResponseWriter, err error) {
	slog.Error("request error", "error", err)

	switch {
	case errors.Is(err, nosvault.ErrNotFound):
		WriteError(w, http.StatusNotFound, "file not found")
	case errors.Is(err, nosvault.ErrUnauthorized):
		WriteError(w, http.StatusUnauthorized, "unauthorized: invalid or missing signed event")
	case errors.Is(err, nosvault.ErrForbidden):
		WriteError(w, http.StatusForbidden, "forbidden: pubkey does not own target directory")
	case errors.Is(err, nosvault.ErrInvalidInput):
		WriteError(w, http.StatusBadRequest, "invalid path")
	default:
		WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
