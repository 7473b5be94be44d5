package analytics

import (
	"sort"
	"strconv"

	"Backend-Recruit-Console/src/models"
	"Backend-Recruit-Console/src/services/forms"
)

// TextSampleLimit caps the free-text sample kept per field (latest first).
const TextSampleLimit = 20

// Chart is the suggested visualization for a field aggregate. The counting
// itself is the contract; the chart hint is advisory for the console UI.
type Chart string

const (
	ChartLatestList  Chart = "latest"
	ChartCategorical Chart = "pie"
	ChartRankedBar   Chart = "bar"
	ChartMean        Chart = "mean"
	ChartTimeline    Chart = "timeline"
	ChartLinks       Chart = "links"
	ChartStackedBar  Chart = "stacked-bar"
)

// FieldAggregate is the chart-ready aggregate for one field.
type FieldAggregate struct {
	FieldID string               `json:"fieldId"`
	Type    models.FieldType     `json:"type"`
	Label   models.LocalizedText `json:"label"`
	Chart   Chart                `json:"chart"`

	// Total counts submissions with a non-empty answer for this field.
	Total int `json:"total"`

	// Counts is the value-frequency table (choice, scale, number, date, time).
	// Array answers contribute one increment per element.
	Counts map[string]int `json:"counts,omitempty"`

	// Mean over the parseable numeric answers; nil when none parsed.
	Mean *float64 `json:"mean,omitempty"`

	// Texts holds the latest free-text answers, most recent first.
	Texts []string `json:"texts,omitempty"`

	// Files holds stored upload paths, in submission order.
	Files []string `json:"files,omitempty"`

	// Grid pivot: row -> column value -> count. Every declared row appears,
	// even with zero observations. GridColumns is the union of observed
	// column values across all rows.
	Grid        map[string]map[string]int `json:"grid,omitempty"`
	GridColumns []string                  `json:"gridColumns,omitempty"`
}

// Aggregate pivots stored submissions into per-field chart data, driven by
// the same schema the renderer consumed. Read-only: submissions are never
// mutated here.
func Aggregate(schema *models.FormSchema, submissions []models.Submission) []FieldAggregate {
	decoded := make([]map[string]models.AnswerValue, len(submissions))
	for i := range submissions {
		decoded[i] = forms.Decode(schema, submissions[i].Answers)
	}

	aggregates := make([]FieldAggregate, 0, len(schema.Fields))
	for i := range schema.Fields {
		field := &schema.Fields[i]
		agg := FieldAggregate{
			FieldID: field.ID,
			Type:    field.Type,
			Label:   field.Label,
			Chart:   chartFor(field.Type),
		}

		switch {
		case field.Type.IsGrid():
			aggregateGrid(field, decoded, &agg)
		case field.Type == models.FieldFile:
			aggregateFiles(field, decoded, &agg)
		case field.Type.IsTextLike() && field.Type != models.FieldDate && field.Type != models.FieldTime:
			aggregateTexts(field, decoded, &agg)
		default:
			aggregateCounts(field, decoded, &agg)
		}

		aggregates = append(aggregates, agg)
	}
	return aggregates
}

func chartFor(t models.FieldType) Chart {
	switch {
	case t.IsGrid():
		return ChartStackedBar
	case t == models.FieldCheckbox:
		return ChartRankedBar
	case t == models.FieldSelect || t == models.FieldRadio:
		return ChartCategorical
	case t.IsNumeric():
		return ChartMean
	case t == models.FieldDate || t == models.FieldTime:
		return ChartTimeline
	case t == models.FieldFile:
		return ChartLinks
	default:
		return ChartLatestList
	}
}

// aggregateCounts builds the value-frequency table and, for numeric types,
// the mean. Non-numeric or empty answers are excluded from both the mean's
// numerator and denominator.
func aggregateCounts(field *models.FieldDefinition, decoded []map[string]models.AnswerValue, agg *FieldAggregate) {
	agg.Counts = map[string]int{}
	var sum float64
	var numericCount int

	for _, answers := range decoded {
		value, ok := answers[field.ID]
		if !ok || value.IsEmpty() {
			continue
		}
		agg.Total++

		switch value.Kind {
		case models.AnswerList:
			for _, v := range value.List {
				agg.Counts[v]++
			}
		default:
			agg.Counts[value.Scalar]++
			if field.Type.IsNumeric() {
				if n, err := strconv.ParseFloat(value.Scalar, 64); err == nil {
					sum += n
					numericCount++
				}
			}
		}
	}

	if field.Type.IsNumeric() && numericCount > 0 {
		mean := sum / float64(numericCount)
		agg.Mean = &mean
	}
}

func aggregateTexts(field *models.FieldDefinition, decoded []map[string]models.AnswerValue, agg *FieldAggregate) {
	var texts []string
	for _, answers := range decoded {
		value, ok := answers[field.ID]
		if !ok || value.IsEmpty() {
			continue
		}
		agg.Total++
		texts = append(texts, value.Scalar)
	}

	// Latest first, capped.
	for i := len(texts) - 1; i >= 0 && len(agg.Texts) < TextSampleLimit; i-- {
		agg.Texts = append(agg.Texts, texts[i])
	}
}

func aggregateFiles(field *models.FieldDefinition, decoded []map[string]models.AnswerValue, agg *FieldAggregate) {
	for _, answers := range decoded {
		value, ok := answers[field.ID]
		if !ok || value.IsEmpty() {
			continue
		}
		agg.Total++
		agg.Files = append(agg.Files, value.Scalar)
	}
}

// aggregateGrid builds the transposed row x column pivot. grid_checkbox
// cells store a comma-joined selection and count once per element.
func aggregateGrid(field *models.FieldDefinition, decoded []map[string]models.AnswerValue, agg *FieldAggregate) {
	agg.Grid = map[string]map[string]int{}
	for _, row := range field.Options {
		agg.Grid[row.Value] = map[string]int{}
	}

	observed := map[string]bool{}
	for _, answers := range decoded {
		value, ok := answers[field.ID]
		if !ok || value.Kind != models.AnswerGrid || value.IsEmpty() {
			continue
		}
		agg.Total++

		for rowKey, cell := range value.Grid {
			if cell == "" {
				continue
			}
			counts, known := agg.Grid[rowKey]
			if !known {
				// Row no longer declared on the schema; keep the data anyway.
				counts = map[string]int{}
				agg.Grid[rowKey] = counts
			}

			if field.Type == models.FieldGridCheckbox {
				for _, v := range forms.SplitMultiValue(cell) {
					counts[v]++
					observed[v] = true
				}
			} else {
				counts[cell]++
				observed[cell] = true
			}
		}
	}

	agg.GridColumns = sortedColumns(observed)
}

// sortedColumns orders the observed column values numerically when they all
// parse as numbers (the implicit 1..5 range) and lexicographically otherwise.
func sortedColumns(observed map[string]bool) []string {
	columns := make([]string, 0, len(observed))
	allNumeric := true
	for v := range observed {
		columns = append(columns, v)
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			allNumeric = false
		}
	}

	if allNumeric {
		sort.Slice(columns, func(i, j int) bool {
			a, _ := strconv.ParseFloat(columns[i], 64)
			b, _ := strconv.ParseFloat(columns[j], 64)
			return a < b
		})
	} else {
		sort.Strings(columns)
	}
	return columns
}
