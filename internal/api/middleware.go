// internal/api/middleware.go
package api

import (
	"net"
	"net/http"
	"strings"

	"portfolio-api/internal/auth"
	custom_errors "portfolio-api/internal/errors"
)

// authenticate attaches the bearer token's user to the request context, if any.
// Requests without a valid token continue anonymously.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" || h.deps.Users == nil {
			next.ServeHTTP(w, r)
			return
		}

		user, err := h.deps.Users.Resolve(r.Context(), token)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		if user != nil {
			r = r.WithContext(auth.WithUser(r.Context(), user))
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth.UserFromContext(r.Context()) == nil {
			h.handleError(w, r, custom_errors.ErrUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := auth.UserFromContext(r.Context())
		switch {
		case user == nil:
			h.handleError(w, r, custom_errors.ErrUnauthorized)
		case !user.IsAdmin:
			h.handleError(w, r, custom_errors.ErrForbidden)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// clientIP returns the remote address without its port. RealIP has already applied
// X-Forwarded-For and X-Real-IP.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
