package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error

	FormCollection       *mongo.Collection
	SubmissionCollection *mongo.Collection
	ProjectCollection    *mongo.Collection
)

const defaultDBName = "RecruitConsoleDB"

// DBName returns the database name, overridable via MONGO_DB.
func DBName() string {
	if name := os.Getenv("MONGO_DB"); name != "" {
		return name
	}
	return defaultDBName
}

// ConnectMongoDB connects once and wires up the collection handles.
func ConnectMongoDB() error {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		db := client.Database(DBName())
		FormCollection = db.Collection("forms")
		SubmissionCollection = db.Collection("submissions")
		ProjectCollection = db.Collection("projects")

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// GetCollection returns a collection handle from the connected client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
