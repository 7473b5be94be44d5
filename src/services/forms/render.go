package forms

import "Backend-Recruit-Console/src/models"

// RenderField is one field enriched with everything an applicant renderer
// needs: the input affordance and, for scale fields, the resolved bounds.
type RenderField struct {
	models.FieldDefinition
	Affordance Affordance `json:"affordance"`
	ScaleMin   *int       `json:"scaleMin,omitempty"`
	ScaleMax   *int       `json:"scaleMax,omitempty"`
}

// RenderPayload drives the applicant UI purely from the schema.
type RenderPayload struct {
	Form   *models.FormSchema `json:"form"`
	Fields []RenderField      `json:"fields"`
}

// BuildRenderPayload derives the renderer contract for one schema.
func BuildRenderPayload(schema *models.FormSchema) *RenderPayload {
	fields := make([]RenderField, 0, len(schema.Fields))
	for i := range schema.Fields {
		field := schema.Fields[i]
		rf := RenderField{
			FieldDefinition: field,
			Affordance:      AffordanceFor(field.Type),
		}
		if field.Type == models.FieldScale {
			min, max := field.ScaleBounds()
			rf.ScaleMin = &min
			rf.ScaleMax = &max
		}
		fields = append(fields, rf)
	}
	return &RenderPayload{Form: schema, Fields: fields}
}
