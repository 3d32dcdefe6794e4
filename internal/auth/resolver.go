// internal/auth/resolver.go
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"portfolio-api/internal/database"
	"portfolio-api/internal/model"
)

// UserStore persists users by their identity provider subject.
type UserStore interface {
	UpsertUser(ctx context.Context, arg database.UpsertUserParams) (database.User, error)
}

// TokenVerifier validates a bearer token.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

// Resolver maps bearer tokens to local users, creating the user on first sight.
type Resolver struct {
	verifier TokenVerifier
	users    UserStore
	logger   *slog.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(verifier TokenVerifier, users UserStore, logger *slog.Logger) *Resolver {
	return &Resolver{
		verifier: verifier,
		users:    users,
		logger:   logger.With("component", "auth"),
	}
}

// Resolve returns the user for token. A missing or invalid token yields a nil user and no error;
// only storage failures are returned.
func (r *Resolver) Resolve(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, nil
	}

	claims, err := r.verifier.Verify(ctx, token)
	if err != nil {
		r.logger.Debug("Rejected bearer token", "error", err)
		return nil, nil
	}

	row, err := r.users.UpsertUser(ctx, database.UpsertUserParams{
		ExternalID: claims.Subject,
		Email:      claims.Email,
		Name:       claims.DisplayName(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user %s: %w", claims.Subject, err)
	}

	user := &model.User{
		ID:         row.ID,
		ExternalID: row.ExternalID,
		Email:      row.Email,
		Name:       row.Name,
		IsAdmin:    row.IsAdmin,
		CreatedAt:  row.CreatedAt,
	}
	if row.AvatarUrl.Valid {
		user.AvatarURL = &row.AvatarUrl.String
	}
	return user, nil
}
