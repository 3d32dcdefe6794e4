// internal/api/contact.go
package api

import (
	"fmt"
	"net/http"
	"strconv"

	"portfolio-api/internal/auth"
	custom_errors "portfolio-api/internal/errors"
	"portfolio-api/internal/model"
)

type submitResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ReferenceID int64  `json:"reference_id"`
}

// submitContact stores a message from the signed-in user.
// POST /api/v1/contact/submit
func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	var in model.ContactSubmission
	if err := decodeJSON(w, r, &in); err != nil {
		h.handleError(w, r, err)
		return
	}

	user := auth.UserFromContext(r.Context())
	msg, err := h.deps.Contact.Submit(r.Context(), in, &user.ID, clientIP(r))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, submitResponse{
		Success:     true,
		Message:     fmt.Sprintf("Thank you, %s! Your message has been sent.", msg.SenderName),
		ReferenceID: msg.ID,
	})
}

// GET /api/v1/contact/me
func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, auth.UserFromContext(r.Context()))
}

// GET /api/v1/contact/check-auth
func (h *Handler) checkAuth(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	respondWithJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user_id":       user.ID,
		"name":          user.Name,
		"email":         user.Email,
	})
}

// listMessages returns stored messages for moderation.
// GET /api/v1/contact/messages?include_archived=true
func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	includeArchived := false
	if raw := r.URL.Query().Get("include_archived"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.handleError(w, r, &custom_errors.InvalidParamError{Param: "include_archived", Reason: "must be a boolean"})
			return
		}
		includeArchived = v
	}

	messages, err := h.deps.Contact.List(r.Context(), includeArchived)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, messages)
}
