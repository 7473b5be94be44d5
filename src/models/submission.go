package models

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmissionStatus is the flat moderation label on a submission.
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusRejected SubmissionStatus = "rejected"
)

// IsValid reports whether s is one of the known labels.
func (s SubmissionStatus) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// AnswerEntry is one flat wire pair. Grid cells use composite keys
// "fieldId::rowKey"; checkbox answers join their values with ",".
type AnswerEntry struct {
	Key   string `bson:"key" json:"key"`
	Value string `bson:"value" json:"value"`
}

// Submission is one applicant's stored answer set plus identity and status.
// Answers are persisted in wire form and decoded on read.
type Submission struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FormID         primitive.ObjectID `bson:"formId" json:"formId"`
	ApplicantName  string             `bson:"applicantName" json:"applicantName"`
	ApplicantEmail string             `bson:"applicantEmail" json:"applicantEmail"`
	ApplicantPhone string             `bson:"applicantPhone,omitempty" json:"applicantPhone,omitempty"`
	Status         SubmissionStatus   `bson:"status" json:"status"`
	Answers        []AnswerEntry      `bson:"answers" json:"answers"`
	CreatedAt      time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// AnswerKind discriminates the AnswerValue variant.
type AnswerKind int

const (
	AnswerScalar AnswerKind = iota // text-like, date/time, number/scale, select/radio, file
	AnswerList                     // checkbox
	AnswerGrid                     // grid_radio / grid_checkbox, keyed by row
)

// AnswerValue is the structured form of one field's answer: a scalar string,
// a list of selected values, or a rowKey -> cell map for grid fields.
type AnswerValue struct {
	Kind   AnswerKind        `json:"-"`
	Scalar string            `json:"-"`
	List   []string          `json:"-"`
	Grid   map[string]string `json:"-"`
}

// ScalarAnswer wraps a single stringified value.
func ScalarAnswer(v string) AnswerValue {
	return AnswerValue{Kind: AnswerScalar, Scalar: v}
}

// ListAnswer wraps a checkbox selection.
func ListAnswer(vs ...string) AnswerValue {
	if vs == nil {
		vs = []string{}
	}
	return AnswerValue{Kind: AnswerList, List: vs}
}

// GridAnswer wraps a rowKey -> cell value map.
func GridAnswer(rows map[string]string) AnswerValue {
	if rows == nil {
		rows = map[string]string{}
	}
	return AnswerValue{Kind: AnswerGrid, Grid: rows}
}

// IsEmpty reports whether the value carries no answer at all.
func (a AnswerValue) IsEmpty() bool {
	switch a.Kind {
	case AnswerList:
		return len(a.List) == 0
	case AnswerGrid:
		for _, v := range a.Grid {
			if v != "" {
				return false
			}
		}
		return true
	default:
		return a.Scalar == ""
	}
}

// MarshalJSON renders the variant in its natural JSON shape:
// string, array of strings, or object.
func (a AnswerValue) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnswerList:
		return json.Marshal(a.List)
	case AnswerGrid:
		return json.Marshal(a.Grid)
	default:
		return json.Marshal(a.Scalar)
	}
}

// UnmarshalJSON probes the JSON shape to pick the variant.
func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = ScalarAnswer(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*a = ListAnswer(list...)
		return nil
	}
	var grid map[string]string
	if err := json.Unmarshal(data, &grid); err == nil {
		*a = GridAnswer(grid)
		return nil
	}
	return fmt.Errorf("answer value must be a string, string array, or string map")
}
