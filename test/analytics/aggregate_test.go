package analytics

import (
	"testing"
	"time"

	"Backend-Recruit-Console/src/models"
	analyticssvc "Backend-Recruit-Console/src/services/analytics"
	formsvc "Backend-Recruit-Console/src/services/forms"
	"Backend-Recruit-Console/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportSchema() *models.FormSchema {
	return &models.FormSchema{
		Title: models.LocalizedText{En: "Volunteer Intake"},
		Fields: []models.FieldDefinition{
			{ID: "interested", Type: models.FieldRadio, Order: 1,
				Label: models.LocalizedText{En: "Interested?"},
				Options: []models.FieldOption{
					{Value: "yes"}, {Value: "no"},
				}},
			{ID: "languages", Type: models.FieldCheckbox, Order: 2, Options: []models.FieldOption{
				{Value: "tamil"}, {Value: "english"}, {Value: "sinhala"},
			}},
			{ID: "self_rating", Type: models.FieldGridRadio, Order: 3, Options: []models.FieldOption{
				{Value: "communication", Label: models.LocalizedText{En: "Communication"}},
				{Value: "teamwork", Label: models.LocalizedText{En: "Teamwork"}},
			}},
			{ID: "availability", Type: models.FieldScale, Order: 4},
			{ID: "motivation", Type: models.FieldTextarea, Order: 5},
		},
	}
}

func submissionWith(answers map[string]models.AnswerValue) models.Submission {
	return models.Submission{
		Answers:   formsvc.Encode(answers),
		CreatedAt: time.Now(),
	}
}

func aggregateByID(aggs []analyticssvc.FieldAggregate) map[string]analyticssvc.FieldAggregate {
	byID := make(map[string]analyticssvc.FieldAggregate, len(aggs))
	for _, a := range aggs {
		byID[a.FieldID] = a
	}
	return byID
}

func TestAggregation(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Response Aggregation Tests")
	defer suiteResult.PrintSummary()

	schema := reportSchema()

	t.Run("TestChoiceFrequencyTable", func(t *testing.T) {
		timer := test.NewTestTimer("Choice Frequency Table")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Choice Frequency Table", Duration: duration, Passed: true})
			test.PerformanceAssertion(t, "Choice Frequency Table", duration, 100*time.Millisecond)
		}()

		subs := []models.Submission{
			submissionWith(map[string]models.AnswerValue{"interested": models.ScalarAnswer("yes")}),
			submissionWith(map[string]models.AnswerValue{"interested": models.ScalarAnswer("yes")}),
			submissionWith(map[string]models.AnswerValue{"interested": models.ScalarAnswer("no")}),
		}

		agg := aggregateByID(analyticssvc.Aggregate(schema, subs))["interested"]
		assert.Equal(t, 3, agg.Total)
		assert.Equal(t, map[string]int{"yes": 2, "no": 1}, agg.Counts)
		assert.Equal(t, analyticssvc.ChartCategorical, agg.Chart)

		// Sum of frequencies never exceeds the answering submissions.
		sum := 0
		for _, n := range agg.Counts {
			sum += n
		}
		assert.Equal(t, agg.Total, sum)
	})

	t.Run("TestCheckboxCountsPerElement", func(t *testing.T) {
		timer := test.NewTestTimer("Checkbox Per-Element Counts")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Checkbox Per-Element Counts", Duration: duration, Passed: true})
		}()

		subs := []models.Submission{
			submissionWith(map[string]models.AnswerValue{"languages": models.ListAnswer("tamil", "english")}),
			submissionWith(map[string]models.AnswerValue{"languages": models.ListAnswer("tamil")}),
		}

		agg := aggregateByID(analyticssvc.Aggregate(schema, subs))["languages"]
		assert.Equal(t, 2, agg.Total)
		assert.Equal(t, map[string]int{"tamil": 2, "english": 1}, agg.Counts)
	})

	t.Run("TestGridPivot", func(t *testing.T) {
		timer := test.NewTestTimer("Grid Pivot")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Grid Pivot", Duration: duration, Passed: true})
		}()

		subs := []models.Submission{
			submissionWith(map[string]models.AnswerValue{"self_rating": models.GridAnswer(map[string]string{
				"communication": "3", "teamwork": "5",
			})}),
			submissionWith(map[string]models.AnswerValue{"self_rating": models.GridAnswer(map[string]string{
				"communication": "3", "teamwork": "5",
			})}),
		}

		agg := aggregateByID(analyticssvc.Aggregate(schema, subs))["self_rating"]
		assert.Equal(t, 2, agg.Total)
		assert.Equal(t, map[string]int{"3": 2}, agg.Grid["communication"])
		assert.Equal(t, map[string]int{"5": 2}, agg.Grid["teamwork"])
		assert.Equal(t, []string{"3", "5"}, agg.GridColumns)
	})

	t.Run("TestDeclaredRowWithoutAnswers", func(t *testing.T) {
		timer := test.NewTestTimer("Declared Row Without Answers")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Declared Row Without Answers", Duration: duration, Passed: true})
		}()

		subs := []models.Submission{
			submissionWith(map[string]models.AnswerValue{"self_rating": models.GridAnswer(map[string]string{
				"communication": "4",
			})}),
		}

		agg := aggregateByID(analyticssvc.Aggregate(schema, subs))["self_rating"]
		row, present := agg.Grid["teamwork"]
		require.True(t, present)
		assert.Empty(t, row)
	})

	t.Run("TestMeanExcludesNonNumeric", func(t *testing.T) {
		timer := test.NewTestTimer("Mean Excludes Non-Numeric")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Mean Excludes Non-Numeric", Duration: duration, Passed: true})
		}()

		subs := []models.Submission{
			submissionWith(map[string]models.AnswerValue{"availability": models.ScalarAnswer("2")}),
			submissionWith(map[string]models.AnswerValue{"availability": models.ScalarAnswer("4")}),
			submissionWith(map[string]models.AnswerValue{"availability": models.ScalarAnswer("")}),
			submissionWith(map[string]models.AnswerValue{"availability": models.ScalarAnswer("6")}),
		}

		agg := aggregateByID(analyticssvc.Aggregate(schema, subs))["availability"]
		require.NotNil(t, agg.Mean)
		assert.InDelta(t, 4.0, *agg.Mean, 0.0001)
	})

	t.Run("TestMeanNilWhenNothingParses", func(t *testing.T) {
		timer := test.NewTestTimer("Mean Nil Without Numbers")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Mean Nil Without Numbers", Duration: duration, Passed: true})
		}()

		subs := []models.Submission{
			submissionWith(map[string]models.AnswerValue{"availability": models.ScalarAnswer("often")}),
		}

		agg := aggregateByID(analyticssvc.Aggregate(schema, subs))["availability"]
		assert.Nil(t, agg.Mean)
	})

	t.Run("TestTextSampleLatestFirst", func(t *testing.T) {
		timer := test.NewTestTimer("Text Sample Latest First")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Text Sample Latest First", Duration: duration, Passed: true})
		}()

		subs := []models.Submission{
			submissionWith(map[string]models.AnswerValue{"motivation": models.ScalarAnswer("first")}),
			submissionWith(map[string]models.AnswerValue{"motivation": models.ScalarAnswer("second")}),
			submissionWith(map[string]models.AnswerValue{"motivation": models.ScalarAnswer("third")}),
		}

		agg := aggregateByID(analyticssvc.Aggregate(schema, subs))["motivation"]
		assert.Equal(t, []string{"third", "second", "first"}, agg.Texts)
		assert.Equal(t, analyticssvc.ChartLatestList, agg.Chart)
	})

	t.Run("TestTwoApplicantScenario", func(t *testing.T) {
		timer := test.NewTestTimer("Two Applicant Scenario")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Two Applicant Scenario", Duration: duration, Passed: true})
		}()

		subs := []models.Submission{
			submissionWith(map[string]models.AnswerValue{
				"interested": models.ScalarAnswer("yes"),
				"self_rating": models.GridAnswer(map[string]string{
					"teamwork": "5",
				}),
			}),
			submissionWith(map[string]models.AnswerValue{
				"interested": models.ScalarAnswer("no"),
				"self_rating": models.GridAnswer(map[string]string{
					"teamwork": "5",
				}),
			}),
		}

		byID := aggregateByID(analyticssvc.Aggregate(schema, subs))
		assert.Equal(t, map[string]int{"yes": 1, "no": 1}, byID["interested"].Counts)
		assert.Equal(t, map[string]int{"5": 2}, byID["self_rating"].Grid["teamwork"])
	})

	t.Run("TestEveryFieldGetsAnAggregate", func(t *testing.T) {
		timer := test.NewTestTimer("Every Field Aggregated")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Every Field Aggregated", Duration: duration, Passed: true})
		}()

		aggs := analyticssvc.Aggregate(schema, nil)
		require.Len(t, aggs, len(schema.Fields))
		for i, agg := range aggs {
			assert.Equal(t, schema.Fields[i].ID, agg.FieldID)
			assert.Equal(t, 0, agg.Total)
		}
	})
}
