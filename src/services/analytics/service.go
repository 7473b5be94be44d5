package analytics

import (
	"context"
	"encoding/json"
	"log"
	"time"

	DB "Backend-Recruit-Console/src/database"
	"Backend-Recruit-Console/src/models"
	"Backend-Recruit-Console/src/services/forms"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// cacheTTL bounds staleness of cached aggregates. The read side is
// eventually consistent anyway; the cache is also dropped on writes.
const cacheTTL = 60 * time.Second

func cacheKey(formID primitive.ObjectID) string {
	return "analytics:form:" + formID.Hex()
}

// GetFormAnalytics aggregates every stored submission of one form,
// serving from the Redis cache when possible.
func GetFormAnalytics(ctx context.Context, formID primitive.ObjectID) ([]FieldAggregate, error) {
	if DB.RedisClient != nil {
		cached, err := DB.RedisClient.Get(ctx, cacheKey(formID)).Result()
		if err == nil {
			var aggregates []FieldAggregate
			if json.Unmarshal([]byte(cached), &aggregates) == nil {
				return aggregates, nil
			}
		}
	}

	schema, err := forms.GetFormByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	submissions, err := fetchSubmissions(ctx, formID)
	if err != nil {
		return nil, err
	}

	aggregates := Aggregate(schema, submissions)

	if DB.RedisClient != nil {
		if payload, err := json.Marshal(aggregates); err == nil {
			if err := DB.RedisClient.Set(ctx, cacheKey(formID), payload, cacheTTL).Err(); err != nil {
				log.Println("⚠️ Failed to cache analytics for form", formID.Hex(), ":", err)
			}
		}
	}

	return aggregates, nil
}

// GetFormExport builds the CSV body and filename for one form.
func GetFormExport(ctx context.Context, formID primitive.ObjectID) (body, filename string, err error) {
	schema, err := forms.GetFormByID(ctx, formID)
	if err != nil {
		return "", "", err
	}

	submissions, err := fetchSubmissions(ctx, formID)
	if err != nil {
		return "", "", err
	}

	return ExportCSV(schema, submissions), ExportFilename(schema), nil
}

// InvalidateFormCache drops the cached aggregates after a write.
func InvalidateFormCache(formID primitive.ObjectID) {
	if DB.RedisClient == nil {
		return
	}
	if err := DB.RedisClient.Del(DB.RedisCtx, cacheKey(formID)).Err(); err != nil {
		log.Println("⚠️ Failed to invalidate analytics cache for form", formID.Hex(), ":", err)
	}
}

// fetchSubmissions reads in insertion order so CSV rows and latest-N text
// samples line up with what the console lists.
func fetchSubmissions(ctx context.Context, formID primitive.ObjectID) ([]models.Submission, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := DB.SubmissionCollection.Find(ctx, bson.M{"formId": formID}, opts)
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
