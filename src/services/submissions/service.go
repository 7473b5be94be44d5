package submissions

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	DB "Backend-Recruit-Console/src/database"
	"Backend-Recruit-Console/src/models"
	"Backend-Recruit-Console/src/services/analytics"
	"Backend-Recruit-Console/src/services/forms"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrFormClosed         = errors.New("form is not accepting submissions")
	ErrFormFull           = errors.New("form has reached its response limit")
	ErrInvalidStatus      = errors.New("invalid submission status")
)

// CreateSubmission is the authoritative server-side acceptance check: it
// re-validates the wire answers against the schema, enforces the active
// window and the response cap, and inserts exactly one document.
// Never retried: a failed insert surfaces to the client as-is.
func CreateSubmission(ctx context.Context, submission *models.Submission) (*forms.ValidationError, error) {
	schema, err := forms.GetFormByID(ctx, submission.FormID)
	if err != nil {
		return nil, err
	}

	if err := checkWindow(schema); err != nil {
		return nil, err
	}

	answers := forms.Decode(schema, submission.Answers)
	if fieldErrs := forms.ValidateAnswers(schema, answers); len(fieldErrs) > 0 {
		return &forms.ValidationError{Fields: fieldErrs}, nil
	}

	submission.ID = primitive.NewObjectID()
	submission.Status = models.StatusPending
	submission.CreatedAt = time.Now()

	if _, err := DB.SubmissionCollection.InsertOne(ctx, submission); err != nil {
		return nil, err
	}

	// The counter is monotonic; deletes never decrement it.
	_, err = DB.FormCollection.UpdateOne(ctx,
		bson.M{"_id": submission.FormID},
		bson.M{"$inc": bson.M{"currentResponses": 1}},
	)
	if err != nil {
		log.Println("⚠️ Failed to bump response counter for form", submission.FormID.Hex(), ":", err)
	}

	analytics.InvalidateFormCache(submission.FormID)

	log.Printf("[submission] inserted id=%s form=%s answers=%d",
		submission.ID.Hex(), submission.FormID.Hex(), len(submission.Answers))
	return nil, nil
}

func checkWindow(schema *models.FormSchema) error {
	if !schema.IsActive {
		return ErrFormClosed
	}
	now := time.Now()
	if schema.StartDate != nil && now.Before(*schema.StartDate) {
		return ErrFormClosed
	}
	if schema.EndDate != nil && now.After(*schema.EndDate) {
		return ErrFormClosed
	}
	if schema.MaxResponses != nil && schema.CurrentResponses >= *schema.MaxResponses {
		return ErrFormFull
	}
	return nil
}

// GetSubmissionByID fetches one submission.
func GetSubmissionByID(ctx context.Context, id primitive.ObjectID) (*models.Submission, error) {
	var submission models.Submission
	err := DB.SubmissionCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&submission)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return &submission, nil
}

// GetSubmissionsByFormID lists a form's submissions, optionally limited and
// sorted ("createdAt" ascending, "-createdAt" descending). Default is
// insertion order so exports match the fetch order.
func GetSubmissionsByFormID(ctx context.Context, formID primitive.ObjectID, limit int64, sortField string) ([]models.Submission, error) {
	filter := bson.M{"formId": formID}

	findOpts := options.Find()
	if limit > 0 {
		findOpts.SetLimit(limit)
	}
	if sortField != "" {
		sort := bson.D{}
		if strings.HasPrefix(sortField, "-") {
			sort = append(sort, bson.E{Key: strings.TrimPrefix(sortField, "-"), Value: -1})
		} else {
			sort = append(sort, bson.E{Key: sortField, Value: 1})
		}
		findOpts.SetSort(sort)
	} else {
		findOpts.SetSort(bson.D{{Key: "createdAt", Value: 1}})
	}

	cursor, err := DB.SubmissionCollection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var submissions []models.Submission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

// UpdateStatus sets the flat moderation label on a submission.
func UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.SubmissionStatus) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	result, err := DB.SubmissionCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}

// DeleteSubmission removes a submission. The response counter stays put.
func DeleteSubmission(ctx context.Context, id primitive.ObjectID) error {
	var submission models.Submission
	err := DB.SubmissionCollection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&submission)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrSubmissionNotFound
		}
		return err
	}

	analytics.InvalidateFormCache(submission.FormID)
	return nil
}
