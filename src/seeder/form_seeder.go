package seeder

import (
	"context"
	"log"

	"Backend-Recruit-Console/src/models"
	"Backend-Recruit-Console/src/services/forms"
)

// SeedSampleForms creates a sample recruitment form for local development.
func SeedSampleForms() error {
	ctx := context.Background()

	minLen := 2
	volunteerForm := &models.FormSchema{
		Title: models.LocalizedText{
			En: "Volunteer Recruitment 2026",
			Ta: "தன்னார்வலர் சேர்க்கை 2026",
		},
		Description: models.LocalizedText{
			En: "Join our community outreach team",
			Ta: "எங்கள் சமூக சேவை குழுவில் இணையுங்கள்",
		},
		IsActive: true,
		Role:     "volunteer",
		Fields: []models.FieldDefinition{
			{
				ID:       "full_name",
				Type:     models.FieldText,
				Label:    models.LocalizedText{En: "Full name", Ta: "முழு பெயர்"},
				Required: true,
				Order:    1,
				Validation: &models.FieldValidation{
					MinLength: &minLen,
				},
			},
			{
				ID:       "preferred_area",
				Type:     models.FieldRadio,
				Label:    models.LocalizedText{En: "Preferred area", Ta: "விருப்பமான பகுதி"},
				Required: true,
				Order:    2,
				Options: []models.FieldOption{
					{Value: "education", Label: models.LocalizedText{En: "Education", Ta: "கல்வி"}},
					{Value: "health", Label: models.LocalizedText{En: "Health", Ta: "சுகாதாரம்"}},
					{Value: "environment", Label: models.LocalizedText{En: "Environment", Ta: "சுற்றுச்சூழல்"}},
				},
			},
			{
				ID:       "languages",
				Type:     models.FieldCheckbox,
				Label:    models.LocalizedText{En: "Languages you speak", Ta: "நீங்கள் பேசும் மொழிகள்"},
				Required: true,
				Order:    3,
				Options: []models.FieldOption{
					{Value: "tamil", Label: models.LocalizedText{En: "Tamil", Ta: "தமிழ்"}},
					{Value: "english", Label: models.LocalizedText{En: "English", Ta: "ஆங்கிலம்"}},
					{Value: "sinhala", Label: models.LocalizedText{En: "Sinhala", Ta: "சிங்களம்"}},
				},
			},
			{
				ID:       "availability",
				Type:     models.FieldScale,
				Label:    models.LocalizedText{En: "Days available per week", Ta: "வாரத்திற்கு கிடைக்கும் நாட்கள்"},
				Required: false,
				Order:    4,
			},
			{
				ID:       "self_rating",
				Type:     models.FieldGridRadio,
				Label:    models.LocalizedText{En: "Rate yourself (1-5)", Ta: "உங்களை மதிப்பிடுங்கள் (1-5)"},
				Required: true,
				Order:    5,
				Options: []models.FieldOption{
					{Value: "communication", Label: models.LocalizedText{En: "Communication", Ta: "தொடர்பு"}},
					{Value: "teamwork", Label: models.LocalizedText{En: "Teamwork", Ta: "குழுப்பணி"}},
					{Value: "leadership", Label: models.LocalizedText{En: "Leadership", Ta: "தலைமைத்துவம்"}},
				},
			},
			{
				ID:       "resume",
				Type:     models.FieldFile,
				Label:    models.LocalizedText{En: "Resume (optional)", Ta: "சுயவிவரம் (விருப்பம்)"},
				Required: false,
				Order:    6,
			},
		},
	}

	schemaErrs, err := forms.CreateForm(ctx, volunteerForm)
	if err != nil {
		return err
	}
	if len(schemaErrs) > 0 {
		log.Println("⚠️ Sample form rejected by schema validation:", schemaErrs)
		return schemaErrs[0]
	}

	log.Println("✅ Seeded sample form:", volunteerForm.ID.Hex())
	return nil
}
