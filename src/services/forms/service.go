package forms

import (
	"context"
	"errors"
	"log"
	"time"

	DB "Backend-Recruit-Console/src/database"
	"Backend-Recruit-Console/src/jobs"
	"Backend-Recruit-Console/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrFormNotFound maps to an empty/placeholder state on the client.
var ErrFormNotFound = errors.New("form not found")

// CreateForm validates and stores a new form schema.
func CreateForm(ctx context.Context, schema *models.FormSchema) ([]SchemaError, error) {
	if schemaErrs := ValidateSchema(schema); len(schemaErrs) > 0 {
		return schemaErrs, nil
	}

	now := time.Now()
	schema.ID = primitive.NewObjectID()
	schema.CurrentResponses = 0
	schema.CreatedAt = now
	schema.UpdatedAt = now

	if _, err := DB.FormCollection.InsertOne(ctx, schema); err != nil {
		return nil, err
	}

	scheduleClose(schema)
	return nil, nil
}

// UpdateForm validates and replaces a form schema's definition.
// CurrentResponses is deliberately left out of the update: the counter is
// owned by the submission path.
func UpdateForm(ctx context.Context, id primitive.ObjectID, schema *models.FormSchema) ([]SchemaError, error) {
	if schemaErrs := ValidateSchema(schema); len(schemaErrs) > 0 {
		return schemaErrs, nil
	}

	update := bson.M{"$set": bson.M{
		"title":        schema.Title,
		"description":  schema.Description,
		"isActive":     schema.IsActive,
		"startDate":    schema.StartDate,
		"endDate":      schema.EndDate,
		"maxResponses": schema.MaxResponses,
		"role":         schema.Role,
		"projectId":    schema.ProjectID,
		"fields":       schema.Fields,
		"updatedAt":    time.Now(),
	}}

	result, err := DB.FormCollection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrFormNotFound
	}

	schema.ID = id
	scheduleClose(schema)
	return nil, nil
}

// GetForms lists form schemas with pagination and bilingual title search.
func GetForms(ctx context.Context, params models.PaginationParams) (*models.PaginatedResponse, error) {
	filter := bson.M{}
	if params.Search != "" {
		filter["$or"] = []bson.M{
			{"title.en": bson.M{"$regex": params.Search, "$options": "i"}},
			{"title.ta": bson.M{"$regex": params.Search, "$options": "i"}},
		}
	}

	total, err := DB.FormCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := DB.FormCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var forms []models.FormSchema
	if err = cursor.All(ctx, &forms); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(forms, total, params), nil
}

// GetFormByID fetches one form schema.
func GetFormByID(ctx context.Context, id primitive.ObjectID) (*models.FormSchema, error) {
	var schema models.FormSchema
	err := DB.FormCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&schema)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return &schema, nil
}

// DeleteForm removes a schema, its submissions and any pending close job.
func DeleteForm(ctx context.Context, id primitive.ObjectID) error {
	result, err := DB.FormCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrFormNotFound
	}

	if _, err := DB.SubmissionCollection.DeleteMany(ctx, bson.M{"formId": id}); err != nil {
		log.Println("⚠️ Failed to delete submissions of form", id.Hex(), ":", err)
	}
	jobs.DeleteCloseForm(id.Hex())
	return nil
}

func scheduleClose(schema *models.FormSchema) {
	if schema.EndDate == nil {
		jobs.DeleteCloseForm(schema.ID.Hex())
		return
	}
	if err := jobs.ScheduleCloseForm(schema.ID.Hex(), *schema.EndDate); err != nil {
		// Scheduling is best-effort; the submit path re-checks the window.
		log.Println("⚠️ Close job not scheduled for form", schema.ID.Hex(), ":", err)
	}
}
