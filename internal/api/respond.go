// internal/api/respond.go
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"

	custom_errors "portfolio-api/internal/errors"
)

const maxBodyBytes = 64 << 10

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(data)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// handleError maps service errors to HTTP responses. Unknown errors are logged and
// reported as a generic 500.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *custom_errors.ValidationError
	var paramErr *custom_errors.InvalidParamError

	switch {
	case errors.As(err, &validationErr):
		respondWithJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":   "Validation failed",
			"details": validationErr.Fields,
		})
	case errors.As(err, &paramErr):
		respondWithError(w, http.StatusBadRequest, paramErr.Error())
	case errors.Is(err, custom_errors.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, "Authentication required. Please sign in to continue.")
	case errors.Is(err, custom_errors.ErrForbidden):
		respondWithError(w, http.StatusForbidden, "You do not have access to this resource.")
	default:
		h.logger.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeJSON reads a JSON request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &custom_errors.InvalidParamError{Param: "body", Reason: fmt.Sprintf("malformed JSON: %v", err)}
	}
	return nil
}
