package projects

import (
	"context"
	"errors"
	"time"

	DB "Backend-Recruit-Console/src/database"
	"Backend-Recruit-Console/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrProjectNotFound = errors.New("project not found")

// CreateProject stores a new project entity.
func CreateProject(ctx context.Context, project *models.Project) error {
	now := time.Now()
	project.ID = primitive.NewObjectID()
	project.CreatedAt = now
	project.UpdatedAt = now

	_, err := DB.ProjectCollection.InsertOne(ctx, project)
	return err
}

// GetProjects lists every project, newest first.
func GetProjects(ctx context.Context) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := DB.ProjectCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProjectByID fetches one project.
func GetProjectByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var project models.Project
	err := DB.ProjectCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// UpdateProject replaces the editable fields of a project.
func UpdateProject(ctx context.Context, id primitive.ObjectID, project *models.Project) error {
	update := bson.M{"$set": bson.M{
		"name":        project.Name,
		"description": project.Description,
		"link":        project.Link,
		"imagePath":   project.ImagePath,
		"updatedAt":   time.Now(),
	}}

	result, err := DB.ProjectCollection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// DeleteProject removes a project.
func DeleteProject(ctx context.Context, id primitive.ObjectID) error {
	result, err := DB.ProjectCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrProjectNotFound
	}
	return nil
}
