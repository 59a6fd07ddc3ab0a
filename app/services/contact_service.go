package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"taskflow/app/logging"
	"taskflow/app/models"
)

// ContactAcknowledgment is shown after a contact form submission.
const ContactAcknowledgment = "Thank you for reaching out! We'll get back soon."

const contactSchemaURL = "taskflow://schemas/contact.json"

const contactSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "email", "message"],
  "properties": {
    "name":    {"type": "string", "minLength": 1, "maxLength": 100, "pattern": "\\S"},
    "email":   {"type": "string", "format": "email", "maxLength": 254},
    "message": {"type": "string", "minLength": 1, "maxLength": 2000, "pattern": "\\S"}
  }
}`

// ValidationError lists field problems found in a submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid contact message: " + strings.Join(parts, "; ")
}

// ContactService accepts contact form submissions. Nothing leaves the process;
// a submission is validated, logged, and acknowledged.
type ContactService struct {
	schema *jsonschema.Schema
	newID  func() string
}

// NewContactService compiles the submission schema.
func NewContactService() (*ContactService, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(contactSchemaURL, strings.NewReader(contactSchema)); err != nil {
		return nil, fmt.Errorf("add contact schema: %w", err)
	}
	schema, err := compiler.Compile(contactSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile contact schema: %w", err)
	}
	return &ContactService{
		schema: schema,
		newID:  uuid.NewString,
	}, nil
}

// Submit validates msg and returns a receipt.
func (s *ContactService) Submit(ctx context.Context, msg models.ContactMessage) (models.ContactReceipt, error) {
	if err := s.Validate(msg); err != nil {
		return models.ContactReceipt{}, err
	}

	receipt := models.ContactReceipt{
		Reference: s.newID(),
		Message:   ContactAcknowledgment,
	}
	logging.FromContext(ctx).Info("contact message received",
		"reference", receipt.Reference,
		"name", msg.Name,
		"email", msg.Email,
		"length", len(msg.Message),
	)
	return receipt, nil
}

// Validate checks msg against the contact schema.
func (s *ContactService) Validate(msg models.ContactMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal contact message: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal contact message: %w", err)
	}

	err = s.schema.Validate(doc)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("validate contact message: %w", err)
	}

	out := &ValidationError{Fields: make(map[string]string)}
	collectSchemaErrors(ve, out.Fields)
	if len(out.Fields) == 0 {
		out.Fields["message"] = ve.Message
	}
	return out
}

// collectSchemaErrors records the first leaf error for each field.
func collectSchemaErrors(ve *jsonschema.ValidationError, fields map[string]string) {
	if len(ve.Causes) == 0 {
		field := strings.TrimPrefix(ve.InstanceLocation, "/")
		if field == "" {
			field = "form"
		}
		if _, ok := fields[field]; !ok {
			fields[field] = ve.Message
		}
		return
	}
	for _, cause := range ve.Causes {
		collectSchemaErrors(cause, fields)
	}
}
