// internal/contact/contact.go
package contact

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"

	"portfolio-api/internal/database"
	"portfolio-api/internal/model"
)

// Store is the persistence used by the contact service.
type Store interface {
	CreateContactMessage(ctx context.Context, arg database.CreateContactMessageParams) (database.ContactMessage, error)
	CountContactMessages(ctx context.Context) (int64, error)
	ListContactMessages(ctx context.Context, includeArchived bool) ([]database.ContactMessage, error)
}

// Service accepts and lists contact-form messages.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates a new contact Service.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.With("component", "contact"),
	}
}

// Submit validates and stores a contact message. Text fields are trimmed before validation.
// A failed validation returns a *errors.ValidationError and stores nothing.
func (s *Service) Submit(ctx context.Context, in model.ContactSubmission, authorID *int64, ip string) (model.ContactMessage, error) {
	in = normalize(in)
	if err := validateStruct(in); err != nil {
		return model.ContactMessage{}, err
	}

	params := database.CreateContactMessageParams{
		SenderName:  in.SenderName,
		SenderEmail: in.SenderEmail,
		Subject:     in.Subject,
		MessageBody: in.MessageBody,
		IpAddress:   ip,
	}
	if authorID != nil {
		params.UserID = pgtype.Int8{Int64: *authorID, Valid: true}
	}
	if in.CompanyName != nil && *in.CompanyName != "" {
		params.CompanyName = pgtype.Text{String: *in.CompanyName, Valid: true}
	}

	row, err := s.store.CreateContactMessage(ctx, params)
	if err != nil {
		return model.ContactMessage{}, fmt.Errorf("failed to store contact message: %w", err)
	}

	s.logger.Info("New contact message",
		"reference_id", row.ID,
		"sender_name", row.SenderName,
		"sender_email", row.SenderEmail,
		"subject", row.Subject,
	)
	return toModel(row), nil
}

// Count returns the number of stored messages.
func (s *Service) Count(ctx context.Context) (int64, error) {
	n, err := s.store.CountContactMessages(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count contact messages: %w", err)
	}
	return n, nil
}

// List returns messages newest first. Archived messages are skipped unless includeArchived is set.
func (s *Service) List(ctx context.Context, includeArchived bool) ([]model.ContactMessage, error) {
	rows, err := s.store.ListContactMessages(ctx, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	messages := make([]model.ContactMessage, len(rows))
	for i, r := range rows {
		messages[i] = toModel(r)
	}
	return messages, nil
}

func normalize(in model.ContactSubmission) model.ContactSubmission {
	in.SenderName = strings.TrimSpace(in.SenderName)
	in.SenderEmail = strings.TrimSpace(in.SenderEmail)
	in.Subject = strings.TrimSpace(in.Subject)
	in.MessageBody = strings.TrimSpace(in.MessageBody)
	if in.CompanyName != nil {
		company := strings.TrimSpace(*in.CompanyName)
		in.CompanyName = &company
	}
	return in
}

func toModel(r database.ContactMessage) model.ContactMessage {
	m := model.ContactMessage{
		ID:          r.ID,
		SenderName:  r.SenderName,
		SenderEmail: r.SenderEmail,
		Subject:     r.Subject,
		MessageBody: r.MessageBody,
		IPAddress:   r.IpAddress,
		IsRead:      r.IsRead,
		IsArchived:  r.IsArchived,
		CreatedAt:   r.CreatedAt,
	}
	if r.UserID.Valid {
		id := r.UserID.Int64
		m.UserID = &id
	}
	if r.CompanyName.Valid {
		company := r.CompanyName.String
		m.CompanyName = &company
	}
	return m
}
