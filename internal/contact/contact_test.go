// internal/contact/contact_test.go
package contact

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/internal/database/memstore"
	custom_errors "portfolio-api/internal/errors"
	"portfolio-api/internal/model"
)

func validSubmission() model.ContactSubmission {
	return model.ContactSubmission{
		SenderName:  "Ada Lovelace",
		SenderEmail: "ada@example.com",
		Subject:     "Project inquiry",
		MessageBody: "I would like to talk about a backend project.",
	}
}

func newTestService(store Store) *Service {
	return NewService(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a valid message", func(t *testing.T) {
		store := memstore.New()
		svc := newTestService(store)
		author := int64(12)
		in := validSubmission()
		company := "  Analytical Engines Ltd  "
		in.CompanyName = &company
		in.SenderName = "  Ada Lovelace "

		msg, err := svc.Submit(ctx, in, &author, "203.0.113.9")

		require.NoError(t, err)
		assert.NotZero(t, msg.ID)
		assert.Equal(t, "Ada Lovelace", msg.SenderName)
		require.NotNil(t, msg.CompanyName)
		assert.Equal(t, "Analytical Engines Ltd", *msg.CompanyName)
		require.NotNil(t, msg.UserID)
		assert.Equal(t, int64(12), *msg.UserID)
		assert.Equal(t, "203.0.113.9", msg.IPAddress)
		assert.False(t, msg.IsRead)
		assert.Len(t, store.Messages(), 1)
	})

	t.Run("anonymous author and empty company", func(t *testing.T) {
		store := memstore.New()
		svc := newTestService(store)
		in := validSubmission()
		empty := "   "
		in.CompanyName = &empty

		msg, err := svc.Submit(ctx, in, nil, "")

		require.NoError(t, err)
		assert.Nil(t, msg.UserID)
		assert.Nil(t, msg.CompanyName)
	})

	t.Run("accepts a 25 character body", func(t *testing.T) {
		svc := newTestService(memstore.New())
		in := validSubmission()
		in.MessageBody = strings.Repeat("x", 25)

		_, err := svc.Submit(ctx, in, nil, "")

		assert.NoError(t, err)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		store := memstore.New()
		dbErr := errors.New("connection refused")
		store.FailOn("CreateContactMessage", dbErr)
		svc := newTestService(store)

		_, err := svc.Submit(ctx, validSubmission(), nil, "")

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestService_Submit_Validation(t *testing.T) {
	ctx := context.Background()
	tooLongCompany := strings.Repeat("c", 256)

	tests := []struct {
		name   string
		mutate func(*model.ContactSubmission)
		field  string
		tag    string
	}{
		{"one character name", func(s *model.ContactSubmission) { s.SenderName = "A" }, "sender_name", "min"},
		{"whitespace padded name", func(s *model.ContactSubmission) { s.SenderName = "  A   " }, "sender_name", "min"},
		{"invalid email", func(s *model.ContactSubmission) { s.SenderEmail = "not-an-email" }, "sender_email", "email"},
		{"missing email", func(s *model.ContactSubmission) { s.SenderEmail = "" }, "sender_email", "required"},
		{"four character subject", func(s *model.ContactSubmission) { s.Subject = "Hiya" }, "subject", "min"},
		{"short body", func(s *model.ContactSubmission) { s.MessageBody = "Too short." }, "message_body", "min"},
		{"long body", func(s *model.ContactSubmission) { s.MessageBody = strings.Repeat("b", 5001) }, "message_body", "max"},
		{"long company", func(s *model.ContactSubmission) { s.CompanyName = &tooLongCompany }, "company_name", "max"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := memstore.New()
			svc := newTestService(store)
			in := validSubmission()
			tc.mutate(&in)

			_, err := svc.Submit(ctx, in, nil, "")

			var validationErr *custom_errors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Len(t, validationErr.Fields, 1)
			assert.Equal(t, tc.field, validationErr.Fields[0].Field)
			assert.Equal(t, tc.tag, validationErr.Fields[0].Tag)
			assert.Contains(t, validationErr.Fields[0].Message, tc.field)
			assert.Empty(t, store.Messages(), "nothing is stored on validation failure")
		})
	}
}

func TestService_Submit_DoesNotLogBody(t *testing.T) {
	var buf bytes.Buffer
	svc := NewService(memstore.New(), slog.New(slog.NewJSONHandler(&buf, nil)))
	in := validSubmission()
	in.MessageBody = "a confidential message body that should stay private"

	_, err := svc.Submit(context.Background(), in, nil, "")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "New contact message")
	assert.Contains(t, out, "ada@example.com")
	assert.Contains(t, out, "reference_id")
	assert.NotContains(t, out, "confidential")
}

func TestService_CountAndList(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	svc := newTestService(store)

	var ids []int64
	for _, subject := range []string{"First subject", "Second subject", "Third subject"} {
		in := validSubmission()
		in.Subject = subject
		msg, err := svc.Submit(ctx, in, nil, "")
		require.NoError(t, err)
		ids = append(ids, msg.ID)
	}
	store.Archive(ids[1])

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	active, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Third subject", active[0].Subject)
	assert.Equal(t, "First subject", active[1].Subject)

	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[1].IsArchived)

	store.FailOn("CountContactMessages", errors.New("timeout"))
	_, err = svc.Count(ctx)
	assert.Error(t, err)
}
