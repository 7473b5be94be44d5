package forms

import (
	"testing"
	"time"

	"Backend-Recruit-Console/src/models"
	formsvc "Backend-Recruit-Console/src/services/forms"
	"Backend-Recruit-Console/test"

	"github.com/stretchr/testify/assert"
)

func codecSchema() *models.FormSchema {
	return &models.FormSchema{
		Fields: []models.FieldDefinition{
			{ID: "full_name", Type: models.FieldText, Order: 1},
			{ID: "languages", Type: models.FieldCheckbox, Order: 2, Options: []models.FieldOption{
				{Value: "tamil"}, {Value: "english"}, {Value: "sinhala"},
			}},
			{ID: "self_rating", Type: models.FieldGridRadio, Order: 3, Options: []models.FieldOption{
				{Value: "communication"}, {Value: "teamwork"},
			}},
			{ID: "availability", Type: models.FieldScale, Order: 4},
		},
	}
}

func TestSubmissionCodec(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Submission Codec Tests")
	defer suiteResult.PrintSummary()

	schema := codecSchema()

	t.Run("TestRoundTrip", func(t *testing.T) {
		timer := test.NewTestTimer("Codec Round Trip")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Codec Round Trip", Duration: duration, Passed: true})
			test.PerformanceAssertion(t, "Codec Round Trip", duration, 100*time.Millisecond)
		}()

		answers := map[string]models.AnswerValue{
			"full_name":    models.ScalarAnswer("Anbu Selvan"),
			"languages":    models.ListAnswer("tamil", "english"),
			"availability": models.ScalarAnswer("4"),
			"self_rating": models.GridAnswer(map[string]string{
				"communication": "4",
				"teamwork":      "5",
			}),
		}

		decoded := formsvc.Decode(schema, formsvc.Encode(answers))
		assert.Equal(t, answers, decoded)
	})

	t.Run("TestGridFlattening", func(t *testing.T) {
		timer := test.NewTestTimer("Grid Flattening")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Grid Flattening", Duration: duration, Passed: true})
		}()

		answers := map[string]models.AnswerValue{
			"self_rating": models.GridAnswer(map[string]string{
				"communication": "3",
				"teamwork":      "5",
			}),
		}

		entries := formsvc.Encode(answers)
		assert.Len(t, entries, 2)
		assert.Equal(t, "self_rating::communication", entries[0].Key)
		assert.Equal(t, "3", entries[0].Value)
		assert.Equal(t, "self_rating::teamwork", entries[1].Key)
		assert.Equal(t, "5", entries[1].Value)
	})

	t.Run("TestCheckboxJoin", func(t *testing.T) {
		timer := test.NewTestTimer("Checkbox Join")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Checkbox Join", Duration: duration, Passed: true})
		}()

		entries := formsvc.Encode(map[string]models.AnswerValue{
			"languages": models.ListAnswer("tamil", "sinhala"),
		})
		assert.Equal(t, []models.AnswerEntry{{Key: "languages", Value: "tamil,sinhala"}}, entries)

		// A single selection must come back as a list, not a scalar.
		decoded := formsvc.Decode(schema, []models.AnswerEntry{{Key: "languages", Value: "tamil"}})
		assert.Equal(t, models.ListAnswer("tamil"), decoded["languages"])
	})

	t.Run("TestEmptyCheckboxRoundTrip", func(t *testing.T) {
		timer := test.NewTestTimer("Empty Checkbox Round Trip")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Empty Checkbox Round Trip", Duration: duration, Passed: true})
		}()

		answers := map[string]models.AnswerValue{
			"languages": models.ListAnswer(),
		}
		decoded := formsvc.Decode(schema, formsvc.Encode(answers))
		assert.Equal(t, answers, decoded)
	})

	t.Run("TestAbsentFieldIsNoAnswer", func(t *testing.T) {
		timer := test.NewTestTimer("Absent Field")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Absent Field", Duration: duration, Passed: true})
		}()

		decoded := formsvc.Decode(schema, []models.AnswerEntry{
			{Key: "full_name", Value: "Kavya"},
		})
		assert.Len(t, decoded, 1)
		_, present := decoded["languages"]
		assert.False(t, present)
	})

	t.Run("TestUnknownKeyPassesThrough", func(t *testing.T) {
		timer := test.NewTestTimer("Unknown Key Pass Through")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Unknown Key Pass Through", Duration: duration, Passed: true})
		}()

		// A field deleted from the schema after submissions were stored.
		decoded := formsvc.Decode(schema, []models.AnswerEntry{
			{Key: "legacy_field", Value: "still here"},
		})
		assert.Equal(t, models.ScalarAnswer("still here"), decoded["legacy_field"])
	})
}
