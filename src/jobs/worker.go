package jobs

import (
	"context"
	"encoding/json"
	"log"

	"Backend-Recruit-Console/src/database"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleCloseFormTask flips isActive off once a form's end date passes.
func HandleCloseFormTask(ctx context.Context, t *asynq.Task) error {
	var payload CloseFormPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	id, err := primitive.ObjectIDFromHex(payload.FormID)
	if err != nil {
		return err
	}

	var form bson.M
	err = database.FormCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("⚠️ Form not found. Possibly deleted. Skipping task:", id.Hex())
			return nil
		}
		return err
	}

	_, err = database.FormCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isActive": false}},
	)
	if err != nil {
		log.Println("❌ Failed to close form:", err)
		return err
	}

	log.Println("✅ Form auto-closed after end date:", id.Hex())
	return nil
}

// StartWorker runs the Asynq server in the background. No-op without Redis.
func StartWorker() {
	if database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Job worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 2},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCloseForm, HandleCloseFormTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Asynq worker stopped:", err)
		}
	}()
	log.Println("✅ Job worker started")
}
