package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	appconfig "github.com/KatzVentures/FounderLeverageDashboard/config"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/model"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/scoring"
)

// Seeds a handful of demo assessments so the admin dashboard has data
// to show during local development.
func main() {
	cfg := appconfig.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	coll := client.Database(cfg.MongoDB).Collection("assessments")

	profiles := []struct {
		name    string
		email   string
		revenue string
		answers model.AssessmentAnswers
	}{
		{
			name:    "Dana Whitfield",
			email:   "dana@acmefulfillment.test",
			revenue: "$1M-$5M",
			answers: model.AssessmentAnswers{
				"q1":  model.TextAnswer("Occasionally"),
				"q2":  model.TextAnswer("Weekly"),
				"q5":  model.TextAnswer("Daily"),
				"q6":  model.TextAnswer("Weekly"),
				"q7":  model.TextAnswer("Somewhat Confident"),
				"q11": model.TextAnswer("Daily"),
				"q13": model.BoolAnswer(false),
				"q15": model.BoolAnswer(true),
				"q17": model.BoolAnswer(true),
				"q19": model.BoolAnswer(false),
				"q23": model.BoolAnswer(true),
			},
		},
		{
			name:    "Marcus Oyelaran",
			email:   "marcus@brightops.test",
			revenue: "$5M-$10M",
			answers: model.AssessmentAnswers{
				"q1":  model.TextAnswer("Daily"),
				"q2":  model.TextAnswer("Daily"),
				"q5":  model.TextAnswer("Rarely"),
				"q7":  model.TextAnswer("Very Confident"),
				"q8":  model.TextAnswer("Weekly"),
				"q13": model.BoolAnswer(true),
				"q14": model.BoolAnswer(true),
				"q19": model.BoolAnswer(true),
				"q20": model.BoolAnswer(true),
				"q23": model.BoolAnswer(false),
			},
		},
	}

	for _, p := range profiles {
		answers := p.answers
		answers[model.AnswerKeyName] = model.TextAnswer(p.name)
		answers[model.AnswerKeyEmail] = model.TextAnswer(p.email)
		answers[model.AnswerKeyRevenueRange] = model.TextAnswer(p.revenue)

		result := scoring.Calculate(scoring.Input{
			Mode:    model.ModeAnswersOnly,
			Answers: answers,
		})

		assessment := model.Assessment{
			ID:        uuid.New().String(),
			Answers:   answers,
			Mode:      model.ModeAnswersOnly,
			Result:    &result,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if _, err := coll.InsertOne(ctx, assessment); err != nil {
			log.Fatalf("Failed to insert assessment for %s: %v", p.name, err)
		}

		stage := scoring.StageForScore(float64(result.Score))
		log.Printf("Seeded %s: score=%d stage=%s", p.name, result.Score, stage.Name)
	}

	log.Println("Done")
}
