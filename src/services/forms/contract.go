package forms

import (
	"fmt"
	"regexp"
	"strconv"

	"Backend-Recruit-Console/src/models"
)

// Affordance declares the input shape a renderer should produce for a type.
type Affordance string

const (
	AffordanceSingle Affordance = "single" // one scalar value
	AffordanceMulti  Affordance = "multi"  // a set of values
	AffordanceGrid   Affordance = "grid"   // one value per declared row
	AffordanceFile   Affordance = "file"   // upload, stored path as the value
)

// AffordanceFor maps every field type to its render affordance.
func AffordanceFor(t models.FieldType) Affordance {
	switch t {
	case models.FieldCheckbox:
		return AffordanceMulti
	case models.FieldGridRadio, models.FieldGridCheckbox:
		return AffordanceGrid
	case models.FieldFile:
		return AffordanceFile
	default:
		return AffordanceSingle
	}
}

// ValidateAnswers checks a decoded answer map against every field of the
// schema. Errors are field-scoped; the only form-wide error is a schema with
// no fields at all.
func ValidateAnswers(schema *models.FormSchema, answers map[string]models.AnswerValue) []FieldValidationError {
	if len(schema.Fields) == 0 {
		return []FieldValidationError{{
			Message: "form has no fields",
		}}
	}

	var errs []FieldValidationError
	for i := range schema.Fields {
		field := &schema.Fields[i]
		value, present := answers[field.ID]
		if fieldErr := ValidateAnswer(field, value, present); fieldErr != nil {
			errs = append(errs, *fieldErr)
		}
	}
	return errs
}

// ValidateAnswer checks one candidate answer against one field definition.
// present is false when the wire list carried no entry for the field.
// Returns nil when the answer is acceptable.
func ValidateAnswer(field *models.FieldDefinition, value models.AnswerValue, present bool) *FieldValidationError {
	if !present || value.IsEmpty() {
		if field.Required {
			return fieldError(field, "answer is required")
		}
		return nil
	}

	switch field.Type {
	case models.FieldText, models.FieldTextarea, models.FieldEmail,
		models.FieldPhone, models.FieldDate, models.FieldTime:
		return validateTextLike(field, value)

	case models.FieldNumber, models.FieldScale:
		return validateNumeric(field, value)

	case models.FieldSelect, models.FieldRadio:
		return validateSingleChoice(field, value)

	case models.FieldCheckbox:
		return validateCheckbox(field, value)

	case models.FieldGridRadio, models.FieldGridCheckbox:
		return validateGrid(field, value)

	case models.FieldFile:
		// Uploading is delegated to the upload collaborator; the stored path
		// is opaque here and only presence matters (handled above).
		if value.Kind != models.AnswerScalar {
			return fieldError(field, "file answer must be a single stored path")
		}
		return nil

	default:
		return fieldError(field, "unsupported field type: "+string(field.Type))
	}
}

func validateTextLike(field *models.FieldDefinition, value models.AnswerValue) *FieldValidationError {
	if value.Kind != models.AnswerScalar {
		return fieldError(field, "a single text value is required")
	}
	text := value.Scalar

	if v := field.Validation; v != nil {
		length := len([]rune(text))
		if v.MinLength != nil && length < *v.MinLength {
			return fieldError(field, fmt.Sprintf("must be at least %d characters", *v.MinLength))
		}
		if v.MaxLength != nil && length > *v.MaxLength {
			return fieldError(field, fmt.Sprintf("must be at most %d characters", *v.MaxLength))
		}
		if v.Pattern != "" {
			re, err := regexp.Compile(v.Pattern)
			if err != nil {
				return fieldError(field, "field pattern is invalid")
			}
			if !re.MatchString(text) {
				return fieldError(field, "does not match the expected format")
			}
		}
	}
	return nil
}

func validateNumeric(field *models.FieldDefinition, value models.AnswerValue) *FieldValidationError {
	if value.Kind != models.AnswerScalar {
		return fieldError(field, "a single numeric value is required")
	}
	number, err := strconv.ParseFloat(value.Scalar, 64)
	if err != nil {
		return fieldError(field, "must be a number")
	}

	if field.Type == models.FieldScale {
		min, max := field.ScaleBounds()
		if number < float64(min) || number > float64(max) {
			return fieldError(field, fmt.Sprintf("must be between %d and %d", min, max))
		}
		return nil
	}

	if v := field.Validation; v != nil {
		if v.Min != nil && number < *v.Min {
			return fieldError(field, fmt.Sprintf("must be at least %v", *v.Min))
		}
		if v.Max != nil && number > *v.Max {
			return fieldError(field, fmt.Sprintf("must be at most %v", *v.Max))
		}
	}
	return nil
}

func validateSingleChoice(field *models.FieldDefinition, value models.AnswerValue) *FieldValidationError {
	if value.Kind != models.AnswerScalar {
		return fieldError(field, "a single selection is required")
	}
	if !field.HasOption(value.Scalar) {
		return fieldError(field, fmt.Sprintf("%q is not one of the options", value.Scalar))
	}
	return nil
}

func validateCheckbox(field *models.FieldDefinition, value models.AnswerValue) *FieldValidationError {
	if value.Kind != models.AnswerList {
		return fieldError(field, "a list of selections is required")
	}
	for _, selected := range value.List {
		if !field.HasOption(selected) {
			return fieldError(field, fmt.Sprintf("%q is not one of the options", selected))
		}
	}
	return nil
}

// validateGrid requires, for a required field, a non-empty cell for every
// declared row. Cell values are free column labels: the column range is
// implicit, so they are not cross-checked against a fixed set.
func validateGrid(field *models.FieldDefinition, value models.AnswerValue) *FieldValidationError {
	if value.Kind != models.AnswerGrid {
		return fieldError(field, "a row-to-value map is required")
	}
	if !field.Required {
		return nil
	}
	for _, row := range field.Options {
		if value.Grid[row.Value] == "" {
			return fieldError(field, fmt.Sprintf("row %q needs an answer", row.Label.Display()))
		}
	}
	return nil
}

func fieldError(field *models.FieldDefinition, message string) *FieldValidationError {
	return &FieldValidationError{
		FieldID: field.ID,
		Label:   field.Label,
		Message: message,
	}
}
