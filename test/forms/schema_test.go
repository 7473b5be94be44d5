package forms

import (
	"testing"
	"time"

	"Backend-Recruit-Console/src/models"
	formsvc "Backend-Recruit-Console/src/services/forms"
	"Backend-Recruit-Console/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codesOf(errs []formsvc.SchemaError) []string {
	codes := make([]string, 0, len(errs))
	for _, e := range errs {
		codes = append(codes, e.Code)
	}
	return codes
}

func TestSchemaValidation(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Schema Validation Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestValidSchemaPasses", func(t *testing.T) {
		timer := test.NewTestTimer("Valid Schema")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Valid Schema", Duration: duration, Passed: true})
			test.PerformanceAssertion(t, "Valid Schema", duration, 100*time.Millisecond)
		}()

		errs := formsvc.ValidateSchema(codecSchema())
		assert.Empty(t, errs)
	})

	t.Run("TestDuplicateFieldIDs", func(t *testing.T) {
		timer := test.NewTestTimer("Duplicate Field IDs")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Duplicate Field IDs", Duration: duration, Passed: true})
		}()

		schema := &models.FormSchema{Fields: []models.FieldDefinition{
			{ID: "email", Type: models.FieldEmail},
			{ID: "email", Type: models.FieldText},
		}}

		errs := formsvc.ValidateSchema(schema)
		require.Len(t, errs, 1)
		assert.Equal(t, formsvc.ErrDuplicateFieldID, errs[0].Code)
		assert.Equal(t, "email", errs[0].FieldID)
	})

	t.Run("TestUnknownFieldType", func(t *testing.T) {
		timer := test.NewTestTimer("Unknown Field Type")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Unknown Field Type", Duration: duration, Passed: true})
		}()

		schema := &models.FormSchema{Fields: []models.FieldDefinition{
			{ID: "signature", Type: models.FieldType("drawing")},
		}}

		errs := formsvc.ValidateSchema(schema)
		require.Len(t, errs, 1)
		assert.Equal(t, formsvc.ErrUnknownFieldType, errs[0].Code)
	})

	t.Run("TestChoiceWithoutOptions", func(t *testing.T) {
		timer := test.NewTestTimer("Choice Without Options")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Choice Without Options", Duration: duration, Passed: true})
		}()

		schema := &models.FormSchema{Fields: []models.FieldDefinition{
			{ID: "area", Type: models.FieldRadio},
			{ID: "skills", Type: models.FieldGridRadio},
		}}

		errs := formsvc.ValidateSchema(schema)
		require.Len(t, errs, 2)
		assert.Equal(t, formsvc.ErrMissingOptions, errs[0].Code)
		assert.Equal(t, formsvc.ErrMissingOptions, errs[1].Code)
	})

	t.Run("TestInvalidBounds", func(t *testing.T) {
		timer := test.NewTestTimer("Invalid Bounds")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Invalid Bounds", Duration: duration, Passed: true})
		}()

		lo, hi := 10.0, 2.0
		minLen, maxLen := 8, 4
		neg := -1
		schema := &models.FormSchema{Fields: []models.FieldDefinition{
			{ID: "age", Type: models.FieldNumber, Validation: &models.FieldValidation{Min: &lo, Max: &hi}},
			{ID: "bio", Type: models.FieldTextarea, Validation: &models.FieldValidation{MinLength: &minLen, MaxLength: &maxLen}},
			{ID: "nick", Type: models.FieldText, Validation: &models.FieldValidation{MinLength: &neg}},
		}}

		errs := formsvc.ValidateSchema(schema)
		require.Len(t, errs, 3)
		for _, e := range errs {
			assert.Equal(t, formsvc.ErrInvalidBounds, e.Code)
		}
	})

	t.Run("TestInvalidPattern", func(t *testing.T) {
		timer := test.NewTestTimer("Invalid Pattern")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Invalid Pattern", Duration: duration, Passed: true})
		}()

		schema := &models.FormSchema{Fields: []models.FieldDefinition{
			{ID: "code", Type: models.FieldText, Validation: &models.FieldValidation{Pattern: "([A-Z"}},
		}}

		errs := formsvc.ValidateSchema(schema)
		require.Len(t, errs, 1)
		assert.Equal(t, formsvc.ErrInvalidPattern, errs[0].Code)
	})

	t.Run("TestReservedDelimiters", func(t *testing.T) {
		timer := test.NewTestTimer("Reserved Delimiters")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Reserved Delimiters", Duration: duration, Passed: true})
		}()

		schema := &models.FormSchema{Fields: []models.FieldDefinition{
			{ID: "rate::this", Type: models.FieldText},
			{ID: "languages", Type: models.FieldCheckbox, Options: []models.FieldOption{
				{Value: "tamil,english"},
			}},
		}}

		errs := formsvc.ValidateSchema(schema)
		codes := codesOf(errs)
		assert.Contains(t, codes, formsvc.ErrReservedDelimiter)
		require.Len(t, errs, 2)
		assert.Equal(t, "rate::this", errs[0].FieldID)
		assert.Equal(t, "languages", errs[1].FieldID)
	})

	t.Run("TestAllProblemsReported", func(t *testing.T) {
		timer := test.NewTestTimer("All Problems Reported")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "All Problems Reported", Duration: duration, Passed: true})
		}()

		// One schema with three independent defects; none should mask another.
		schema := &models.FormSchema{Fields: []models.FieldDefinition{
			{ID: "a", Type: models.FieldRadio},
			{ID: "a", Type: models.FieldText},
			{ID: "b", Type: models.FieldType("hologram")},
		}}

		errs := formsvc.ValidateSchema(schema)
		assert.Len(t, errs, 3)
	})
}
