package analytics

import (
	"sort"
	"strings"
	"time"

	"Backend-Recruit-Console/src/models"
	"Backend-Recruit-Console/src/services/forms"
)

// ExportCSV renders the full response matrix. Header row is the applicant
// identity columns followed by one column per ordered field. Every cell is
// quoted, embedded quotes doubled. Rows keep the fetch order of submissions.
func ExportCSV(schema *models.FormSchema, submissions []models.Submission) string {
	var b strings.Builder

	header := []string{"Submitted At", "Name", "Email", "Phone", "Status"}
	for i := range schema.Fields {
		header = append(header, schema.Fields[i].Label.Display())
	}
	writeRow(&b, header)

	for i := range submissions {
		sub := &submissions[i]
		answers := forms.Decode(schema, sub.Answers)

		row := []string{
			sub.CreatedAt.Format(time.RFC3339),
			sub.ApplicantName,
			sub.ApplicantEmail,
			sub.ApplicantPhone,
			string(sub.Status),
		}
		for j := range schema.Fields {
			row = append(row, renderCell(answers[schema.Fields[j].ID]))
		}
		writeRow(&b, row)
	}

	return b.String()
}

// renderCell flattens one structured answer for a spreadsheet cell:
// arrays join with "; ", grid maps render "row: value | row2: value2".
func renderCell(value models.AnswerValue) string {
	switch value.Kind {
	case models.AnswerList:
		return strings.Join(value.List, "; ")
	case models.AnswerGrid:
		rows := make([]string, 0, len(value.Grid))
		for row := range value.Grid {
			rows = append(rows, row)
		}
		sort.Strings(rows)
		parts := make([]string, 0, len(rows))
		for _, row := range rows {
			parts = append(parts, row+": "+value.Grid[row])
		}
		return strings.Join(parts, " | ")
	default:
		return value.Scalar
	}
}

// writeRow quotes every cell unconditionally. encoding/csv only quotes when
// it must, which breaks the export contract, so the quoting is done by hand.
func writeRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// ExportFilename derives the download name from the form title with
// non-alphanumeric characters stripped.
func ExportFilename(schema *models.FormSchema) string {
	var b strings.Builder
	for _, r := range schema.Title.Display() {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" {
		name = "responses"
	}
	return name + ".csv"
}
