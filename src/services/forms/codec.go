package forms

import (
	"sort"
	"strings"

	"Backend-Recruit-Console/src/models"
)

// Wire-format delimiters. Kept only at this boundary; everything above it
// works on the structured answer map. ValidateSchema rejects ids and option
// values containing either one, so stored schemas always round-trip.
const (
	GridKeySeparator    = "::"
	MultiValueSeparator = ","
)

// GridKey builds the composite wire key for one grid cell.
func GridKey(fieldID, rowKey string) string {
	return fieldID + GridKeySeparator + rowKey
}

// Encode flattens a structured answer map into the wire pair list.
// Grid values emit one pair per row ("fieldId::rowKey"), list values a single
// comma-joined pair, everything else a single pair keyed by field id.
// Output order is deterministic (sorted by key) so stored documents are stable.
func Encode(answers map[string]models.AnswerValue) []models.AnswerEntry {
	entries := make([]models.AnswerEntry, 0, len(answers))

	fieldIDs := make([]string, 0, len(answers))
	for id := range answers {
		fieldIDs = append(fieldIDs, id)
	}
	sort.Strings(fieldIDs)

	for _, fieldID := range fieldIDs {
		value := answers[fieldID]
		switch value.Kind {
		case models.AnswerGrid:
			rowKeys := make([]string, 0, len(value.Grid))
			for row := range value.Grid {
				rowKeys = append(rowKeys, row)
			}
			sort.Strings(rowKeys)
			for _, row := range rowKeys {
				entries = append(entries, models.AnswerEntry{
					Key:   GridKey(fieldID, row),
					Value: value.Grid[row],
				})
			}
		case models.AnswerList:
			entries = append(entries, models.AnswerEntry{
				Key:   fieldID,
				Value: strings.Join(value.List, MultiValueSeparator),
			})
		default:
			entries = append(entries, models.AnswerEntry{
				Key:   fieldID,
				Value: value.Scalar,
			})
		}
	}

	return entries
}

// Decode rebuilds the structured answer map from the wire pair list.
// The schema tells checkbox fields apart from plain scalars; composite keys
// group into per-field row maps. Keys the schema no longer knows pass through
// as scalars, and a field absent from the list simply stays absent - required
// answers are enforced at submit time, never here, so submissions stored
// before a schema gained fields remain decodable.
func Decode(schema *models.FormSchema, entries []models.AnswerEntry) map[string]models.AnswerValue {
	answers := make(map[string]models.AnswerValue, len(entries))

	for _, entry := range entries {
		if fieldID, rowKey, ok := splitGridKey(entry.Key); ok {
			existing, found := answers[fieldID]
			if !found || existing.Kind != models.AnswerGrid {
				existing = models.GridAnswer(map[string]string{})
			}
			existing.Grid[rowKey] = entry.Value
			answers[fieldID] = existing
			continue
		}

		if field, ok := schema.FieldByID(entry.Key); ok && field.Type == models.FieldCheckbox {
			if entry.Value == "" {
				answers[entry.Key] = models.ListAnswer()
			} else {
				answers[entry.Key] = models.ListAnswer(strings.Split(entry.Value, MultiValueSeparator)...)
			}
			continue
		}

		answers[entry.Key] = models.ScalarAnswer(entry.Value)
	}

	return answers
}

func splitGridKey(key string) (fieldID, rowKey string, ok bool) {
	idx := strings.Index(key, GridKeySeparator)
	if idx < 0 {
		return "", "", false
	}
	return key[:idx], key[idx+len(GridKeySeparator):], true
}

// SplitMultiValue splits a comma-joined cell into its selections.
// Used by the aggregator for grid_checkbox cells.
func SplitMultiValue(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, MultiValueSeparator)
}
