package forms

import (
	"fmt"
	"regexp"
	"strings"

	"Backend-Recruit-Console/src/models"
)

// ValidateSchema checks a form definition against the schema invariants.
// It is side-effect free and returns every problem found, not just the first.
// Called when an administrator saves a form and again before rendering.
func ValidateSchema(schema *models.FormSchema) []SchemaError {
	var errs []SchemaError

	seen := make(map[string]bool, len(schema.Fields))
	for i := range schema.Fields {
		f := &schema.Fields[i]

		if f.ID == "" {
			errs = append(errs, SchemaError{
				Code: ErrDuplicateFieldID, FieldID: f.ID,
				Message: fmt.Sprintf("field #%d has no id", i+1),
			})
			continue
		}
		if seen[f.ID] {
			errs = append(errs, SchemaError{
				Code: ErrDuplicateFieldID, FieldID: f.ID,
				Message: "field id is used more than once",
			})
		}
		seen[f.ID] = true

		if !f.Type.IsKnown() {
			errs = append(errs, SchemaError{
				Code: ErrUnknownFieldType, FieldID: f.ID,
				Message: "unsupported field type: " + string(f.Type),
			})
			continue
		}

		// Wire keys are "fieldId::rowKey" and checkbox values join with ",";
		// ids and option values must not contain either delimiter or the
		// stored encoding stops round-tripping.
		if strings.Contains(f.ID, GridKeySeparator) || strings.Contains(f.ID, MultiValueSeparator) {
			errs = append(errs, SchemaError{
				Code: ErrReservedDelimiter, FieldID: f.ID,
				Message: "field id must not contain '::' or ','",
			})
		}

		if f.Type.IsChoice() && len(f.Options) == 0 {
			errs = append(errs, SchemaError{
				Code: ErrMissingOptions, FieldID: f.ID,
				Message: "choice field needs at least one option",
			})
		}
		if f.Type.IsGrid() && len(f.Options) == 0 {
			errs = append(errs, SchemaError{
				Code: ErrMissingOptions, FieldID: f.ID,
				Message: "grid field needs at least one row",
			})
		}

		for _, opt := range f.Options {
			if strings.Contains(opt.Value, GridKeySeparator) || strings.Contains(opt.Value, MultiValueSeparator) {
				errs = append(errs, SchemaError{
					Code: ErrReservedDelimiter, FieldID: f.ID,
					Message: fmt.Sprintf("option value %q must not contain '::' or ','", opt.Value),
				})
			}
		}

		errs = append(errs, validateBounds(f)...)
	}

	return errs
}

func validateBounds(f *models.FieldDefinition) []SchemaError {
	v := f.Validation
	if v == nil {
		return nil
	}

	var errs []SchemaError
	if v.Min != nil && v.Max != nil && *v.Min > *v.Max {
		errs = append(errs, SchemaError{
			Code: ErrInvalidBounds, FieldID: f.ID,
			Message: fmt.Sprintf("min %v is greater than max %v", *v.Min, *v.Max),
		})
	}
	if v.MinLength != nil && v.MaxLength != nil && *v.MinLength > *v.MaxLength {
		errs = append(errs, SchemaError{
			Code: ErrInvalidBounds, FieldID: f.ID,
			Message: fmt.Sprintf("minLength %d is greater than maxLength %d", *v.MinLength, *v.MaxLength),
		})
	}
	if v.MinLength != nil && *v.MinLength < 0 {
		errs = append(errs, SchemaError{
			Code: ErrInvalidBounds, FieldID: f.ID,
			Message: "minLength must not be negative",
		})
	}
	if v.Pattern != "" {
		if _, err := regexp.Compile(v.Pattern); err != nil {
			errs = append(errs, SchemaError{
				Code: ErrInvalidPattern, FieldID: f.ID,
				Message: "pattern does not compile: " + err.Error(),
			})
		}
	}
	return errs
}
