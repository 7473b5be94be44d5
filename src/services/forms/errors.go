package forms

import (
	"fmt"
	"strings"

	"Backend-Recruit-Console/src/models"
)

// SchemaError codes reported by ValidateSchema.
const (
	ErrDuplicateFieldID  = "duplicate_field_id"
	ErrUnknownFieldType  = "unknown_field_type"
	ErrMissingOptions    = "missing_options"
	ErrInvalidBounds     = "invalid_bounds"
	ErrInvalidPattern    = "invalid_pattern"
	ErrReservedDelimiter = "reserved_delimiter"
)

// SchemaError is one problem found in a form definition at save time.
type SchemaError struct {
	Code    string `json:"code"`
	FieldID string `json:"fieldId,omitempty"`
	Message string `json:"message"`
}

func (e SchemaError) Error() string {
	if e.FieldID == "" {
		return e.Code + ": " + e.Message
	}
	return fmt.Sprintf("%s (field %s): %s", e.Code, e.FieldID, e.Message)
}

// FieldValidationError is one rejected answer, keyed by field id and carrying
// the field's bilingual label so the client can surface it inline.
type FieldValidationError struct {
	FieldID string               `json:"fieldId"`
	Label   models.LocalizedText `json:"label"`
	Message string               `json:"message"`
}

func (e FieldValidationError) Error() string {
	return fmt.Sprintf("field %s: %s", e.FieldID, e.Message)
}

// ValidationError bundles every per-field failure of one submission attempt.
type ValidationError struct {
	Fields []FieldValidationError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Error())
	}
	return "submission rejected: " + strings.Join(msgs, "; ")
}
