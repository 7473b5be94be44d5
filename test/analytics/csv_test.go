package analytics

import (
	"strings"
	"testing"
	"time"

	"Backend-Recruit-Console/src/models"
	analyticssvc "Backend-Recruit-Console/src/services/analytics"
	formsvc "Backend-Recruit-Console/src/services/forms"
	"Backend-Recruit-Console/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExport(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("CSV Export Tests")
	defer suiteResult.PrintSummary()

	schema := reportSchema()

	t.Run("TestHeaderShape", func(t *testing.T) {
		timer := test.NewTestTimer("CSV Header Shape")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "CSV Header Shape", Duration: duration, Passed: true})
			test.PerformanceAssertion(t, "CSV Header Shape", duration, 100*time.Millisecond)
		}()

		out := analyticssvc.ExportCSV(schema, nil)
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		require.Len(t, lines, 1)

		cells := strings.Split(lines[0], ",")
		require.Len(t, cells, 5+len(schema.Fields))
		assert.Equal(t, `"Submitted At"`, cells[0])
		assert.Equal(t, `"Status"`, cells[4])
		assert.Equal(t, `"Interested?"`, cells[5])
	})

	t.Run("TestEveryCellQuoted", func(t *testing.T) {
		timer := test.NewTestTimer("Every Cell Quoted")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Every Cell Quoted", Duration: duration, Passed: true})
		}()

		sub := models.Submission{
			ApplicantName:  "Kavya",
			ApplicantEmail: "kavya@example.org",
			Status:         models.StatusPending,
			CreatedAt:      time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC),
			Answers: formsvc.Encode(map[string]models.AnswerValue{
				"motivation": models.ScalarAnswer(`He said "hi"`),
			}),
		}

		out := analyticssvc.ExportCSV(schema, []models.Submission{sub})
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		require.Len(t, lines, 2)

		// Embedded quotes double, everything else is quoted verbatim.
		assert.Contains(t, lines[1], `"He said ""hi"""`)
		assert.Contains(t, lines[1], `"2026-08-01T09:30:00Z"`)
		assert.Contains(t, lines[1], `"Kavya"`)
		assert.Contains(t, lines[1], `"pending"`)

		// Empty cells (phone, unanswered fields) still show up quoted.
		assert.Contains(t, lines[1], `,"",`)
		assert.True(t, strings.HasPrefix(lines[1], `"`))
		assert.True(t, strings.HasSuffix(lines[1], `"`))
	})

	t.Run("TestArrayAndGridCells", func(t *testing.T) {
		timer := test.NewTestTimer("Array And Grid Cells")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Array And Grid Cells", Duration: duration, Passed: true})
		}()

		sub := models.Submission{
			CreatedAt: time.Now(),
			Answers: formsvc.Encode(map[string]models.AnswerValue{
				"languages": models.ListAnswer("tamil", "english"),
				"self_rating": models.GridAnswer(map[string]string{
					"communication": "4",
					"teamwork":      "5",
				}),
			}),
		}

		out := analyticssvc.ExportCSV(schema, []models.Submission{sub})
		assert.Contains(t, out, `"tamil; english"`)
		assert.Contains(t, out, `"communication: 4 | teamwork: 5"`)
	})

	t.Run("TestExportFilename", func(t *testing.T) {
		timer := test.NewTestTimer("Export Filename")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Export Filename", Duration: duration, Passed: true})
		}()

		named := &models.FormSchema{Title: models.LocalizedText{En: "Volunteer Intake 2026!"}}
		assert.Equal(t, "VolunteerIntake2026.csv", analyticssvc.ExportFilename(named))

		unnamed := &models.FormSchema{}
		assert.Equal(t, "responses.csv", analyticssvc.ExportFilename(unnamed))
	})
}
