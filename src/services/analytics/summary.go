package analytics

import (
	"context"

	DB "Backend-Recruit-Console/src/database"

	"go.mongodb.org/mongo-driver/bson"
)

// DashboardSummary holds the console landing-page counters.
type DashboardSummary struct {
	TotalForms       int64 `json:"totalForms"`
	ActiveForms      int64 `json:"activeForms"`
	TotalSubmissions int64 `json:"totalSubmissions"`
	PendingReviews   int64 `json:"pendingReviews"`
	TotalProjects    int64 `json:"totalProjects"`
}

// GetDashboardSummary counts the headline numbers. This is the one read the
// console treats as retryable.
func GetDashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	summary := &DashboardSummary{}
	var err error

	if summary.TotalForms, err = DB.FormCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if summary.ActiveForms, err = DB.FormCollection.CountDocuments(ctx, bson.M{"isActive": true}); err != nil {
		return nil, err
	}
	if summary.TotalSubmissions, err = DB.SubmissionCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if summary.PendingReviews, err = DB.SubmissionCollection.CountDocuments(ctx, bson.M{"status": "pending"}); err != nil {
		return nil, err
	}
	if summary.TotalProjects, err = DB.ProjectCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}

	return summary, nil
}
