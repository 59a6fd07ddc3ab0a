package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"taskflow/app/models"
)

func TestContactSubmit(t *testing.T) {
	svc, err := NewContactService()
	if err != nil {
		t.Fatalf("NewContactService: %v", err)
	}

	receipt, err := svc.Submit(context.Background(), models.ContactMessage{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Love the dashboard.",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if receipt.Message != ContactAcknowledgment {
		t.Errorf("Message: got %q", receipt.Message)
	}
	if _, err := uuid.Parse(receipt.Reference); err != nil {
		t.Errorf("Reference %q is not a UUID: %v", receipt.Reference, err)
	}
}

func TestContactValidate(t *testing.T) {
	svc, err := NewContactService()
	if err != nil {
		t.Fatalf("NewContactService: %v", err)
	}

	tests := []struct {
		name      string
		msg       models.ContactMessage
		badFields []string
	}{
		{
			name:      "missing name",
			msg:       models.ContactMessage{Email: "a@example.com", Message: "hi"},
			badFields: []string{"name"},
		},
		{
			name:      "bad email",
			msg:       models.ContactMessage{Name: "A", Email: "not-an-email", Message: "hi"},
			badFields: []string{"email"},
		},
		{
			name:      "whitespace message",
			msg:       models.ContactMessage{Name: "A", Email: "a@example.com", Message: "   "},
			badFields: []string{"message"},
		},
		{
			name:      "everything empty",
			msg:       models.ContactMessage{},
			badFields: []string{"name", "email", "message"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Validate(tt.msg)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			for _, field := range tt.badFields {
				if _, ok := ve.Fields[field]; !ok {
					t.Errorf("missing error for %q in %v", field, ve.Fields)
				}
			}
		})
	}
}
