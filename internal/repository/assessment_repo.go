package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/KatzVentures/FounderLeverageDashboard/internal/model"
)

// AssessmentRepo handles MongoDB operations for assessments
type AssessmentRepo interface {
	Create(ctx context.Context, assessment *model.Assessment) error
	GetByID(ctx context.Context, id string) (*model.Assessment, error)
	List(ctx context.Context, limit int64) ([]*model.Assessment, error)
	UpdateResult(ctx context.Context, id string, result *model.ResultRecord) error
	UpdateSignals(ctx context.Context, assessment *model.Assessment) error
	Delete(ctx context.Context, id string) error
}

type assessmentRepo struct {
	collection *mongo.Collection
}

// NewAssessmentRepo creates a new assessment repository
func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{
		collection: db.Collection("assessments"),
	}
}

func (r *assessmentRepo) Create(ctx context.Context, assessment *model.Assessment) error {
	assessment.CreatedAt = time.Now()
	assessment.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, assessment)
	return err
}

func (r *assessmentRepo) GetByID(ctx context.Context, id string) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&assessment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

// List returns the most recent assessments, newest first
func (r *assessmentRepo) List(ctx context.Context, limit int64) ([]*model.Assessment, error) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assessments []*model.Assessment
	if err := cursor.All(ctx, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *assessmentRepo) UpdateResult(ctx context.Context, id string, result *model.ResultRecord) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"result":    result,
			"updatedAt": time.Now(),
		},
	})
	return err
}

// UpdateSignals persists the deep-analysis inputs gathered after the
// initial submission, along with any recomputed result
func (r *assessmentRepo) UpdateSignals(ctx context.Context, assessment *model.Assessment) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": assessment.ID}, bson.M{
		"$set": bson.M{
			"mode":           assessment.Mode,
			"emailSignals":   assessment.EmailSignals,
			"meetingSignals": assessment.MeetingSignals,
			"rawMetrics":     assessment.RawMetrics,
			"solutions":      assessment.Solutions,
			"result":         assessment.Result,
			"updatedAt":      time.Now(),
		},
	})
	return err
}

func (r *assessmentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
