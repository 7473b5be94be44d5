package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FieldType is the closed vocabulary of recruitment-form field types.
type FieldType string

const (
	FieldText         FieldType = "text"
	FieldTextarea     FieldType = "textarea"
	FieldEmail        FieldType = "email"
	FieldPhone        FieldType = "phone"
	FieldNumber       FieldType = "number"
	FieldDate         FieldType = "date"
	FieldTime         FieldType = "time"
	FieldSelect       FieldType = "select"
	FieldRadio        FieldType = "radio"
	FieldCheckbox     FieldType = "checkbox"
	FieldFile         FieldType = "file"
	FieldScale        FieldType = "scale"
	FieldGridRadio    FieldType = "grid_radio"
	FieldGridCheckbox FieldType = "grid_checkbox"
)

// Default bounds for scale fields when validation.min/max is absent.
// Renderer, contract and aggregator must all read these, not inline literals.
const (
	ScaleMin = 1
	ScaleMax = 5
)

// AllFieldTypes lists every supported type, in render-palette order.
var AllFieldTypes = []FieldType{
	FieldText, FieldTextarea, FieldEmail, FieldPhone, FieldNumber,
	FieldDate, FieldTime, FieldSelect, FieldRadio, FieldCheckbox,
	FieldFile, FieldScale, FieldGridRadio, FieldGridCheckbox,
}

// IsKnown reports whether t is part of the supported vocabulary.
func (t FieldType) IsKnown() bool {
	for _, k := range AllFieldTypes {
		if t == k {
			return true
		}
	}
	return false
}

// IsChoice: the options list holds the selectable values.
func (t FieldType) IsChoice() bool {
	return t == FieldSelect || t == FieldRadio || t == FieldCheckbox
}

// IsGrid: the options list holds the row identities.
func (t FieldType) IsGrid() bool {
	return t == FieldGridRadio || t == FieldGridCheckbox
}

// IsNumeric: answers parse as numbers and contribute to a mean.
func (t FieldType) IsNumeric() bool {
	return t == FieldNumber || t == FieldScale
}

// IsTextLike: free scalar input validated by length/pattern rules.
func (t FieldType) IsTextLike() bool {
	switch t {
	case FieldText, FieldTextarea, FieldEmail, FieldPhone, FieldDate, FieldTime:
		return true
	}
	return false
}

// FieldOption is one selectable value (choice fields) or one row (grid fields).
type FieldOption struct {
	Value string        `bson:"value" json:"value"`
	Label LocalizedText `bson:"label" json:"label"`
}

// FieldValidation holds the optional per-field constraints.
type FieldValidation struct {
	MinLength *int     `bson:"minLength,omitempty" json:"minLength,omitempty"`
	MaxLength *int     `bson:"maxLength,omitempty" json:"maxLength,omitempty"`
	Pattern   string   `bson:"pattern,omitempty" json:"pattern,omitempty"`
	Min       *float64 `bson:"min,omitempty" json:"min,omitempty"`
	Max       *float64 `bson:"max,omitempty" json:"max,omitempty"`
}

// FieldDefinition is one field of a recruitment form.
// ID is the stable key answers are stored under; Order is a display hint only.
type FieldDefinition struct {
	ID          string           `bson:"id" json:"id"`
	Type        FieldType        `bson:"type" json:"type"`
	Label       LocalizedText    `bson:"label" json:"label"`
	Placeholder *LocalizedText   `bson:"placeholder,omitempty" json:"placeholder,omitempty"`
	Required    bool             `bson:"required" json:"required"`
	Order       int              `bson:"order" json:"order"`
	Options     []FieldOption    `bson:"options,omitempty" json:"options,omitempty"`
	Validation  *FieldValidation `bson:"validation,omitempty" json:"validation,omitempty"`
}

// ScaleBounds resolves the inclusive bounds for a scale field.
func (f *FieldDefinition) ScaleBounds() (int, int) {
	min, max := ScaleMin, ScaleMax
	if f.Validation != nil {
		if f.Validation.Min != nil {
			min = int(*f.Validation.Min)
		}
		if f.Validation.Max != nil {
			max = int(*f.Validation.Max)
		}
	}
	return min, max
}

// OptionValues returns the declared option values in order.
func (f *FieldDefinition) OptionValues() []string {
	values := make([]string, 0, len(f.Options))
	for _, opt := range f.Options {
		values = append(values, opt.Value)
	}
	return values
}

// HasOption reports whether value is one of the declared options.
func (f *FieldDefinition) HasOption(value string) bool {
	for _, opt := range f.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// FormSchema is the full declarative definition of one recruitment form.
// Submissions never mutate a schema; only CurrentResponses is incremented.
type FormSchema struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Title            LocalizedText       `bson:"title" json:"title"`
	Description      LocalizedText       `bson:"description" json:"description"`
	IsActive         bool                `bson:"isActive" json:"isActive"`
	StartDate        *time.Time          `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate          *time.Time          `bson:"endDate,omitempty" json:"endDate,omitempty"`
	MaxResponses     *int                `bson:"maxResponses,omitempty" json:"maxResponses,omitempty"`
	CurrentResponses int                 `bson:"currentResponses" json:"currentResponses"`
	Role             string              `bson:"role,omitempty" json:"role,omitempty"`
	ProjectID        *primitive.ObjectID `bson:"projectId,omitempty" json:"projectId,omitempty"`
	Fields           []FieldDefinition   `bson:"fields" json:"fields"`
	CreatedAt        time.Time           `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt        time.Time           `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// FieldByID looks a field up by its stable key.
func (s *FormSchema) FieldByID(id string) (*FieldDefinition, bool) {
	for i := range s.Fields {
		if s.Fields[i].ID == id {
			return &s.Fields[i], true
		}
	}
	return nil, false
}
