package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"ayudame3d-backend/internal/logger"
	"ayudame3d-backend/internal/repository"
	"ayudame3d-backend/internal/service"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// respondMsg writes the plain error body shape: {"msg": ...}
func respondMsg(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"msg": msg})
}

// respondKo writes the legacy failure shape: {"status": "ko", "msg": ...}
func respondKo(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"status": "ko", "msg": msg})
}

// respondError maps service errors onto the HTTP taxonomy: 404 for missing
// records, 401 for credential failures, 400 for bad input, 500 otherwise.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		respondMsg(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondKo(w, http.StatusUnauthorized, "Bad username or password")
	case errors.Is(err, service.ErrInvalidResetToken):
		respondMsg(w, http.StatusBadRequest, "invalid or expired reset token")
	case errors.Is(err, service.ErrEmailTaken):
		respondMsg(w, http.StatusBadRequest, "email already registered")
	default:
		logger.Error("request failed", "error", err)
		respondMsg(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
