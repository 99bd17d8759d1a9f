package repository

import (
	"context"

	"eduverse-quiz-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StatsRepository struct {
	Col *mongo.Collection
}

func NewStatsRepository(db *mongo.Database) *StatsRepository {
	return &StatsRepository{Col: db.Collection("user_stats")}
}

// FindByUser returns the user's aggregate stats, or a zero-valued record for
// a user who has never completed a quiz.
func (r *StatsRepository) FindByUser(ctx context.Context, userID string) (*models.UserStats, error) {
	var stats models.UserStats
	err := r.Col.FindOne(ctx, bson.M{"_id": userID}).Decode(&stats)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return &models.UserStats{UserID: userID, Badges: []string{}}, nil
		}
		return nil, err
	}
	return &stats, nil
}

func (r *StatsRepository) Upsert(ctx context.Context, stats *models.UserStats) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.Col.ReplaceOne(ctx, bson.M{"_id": stats.UserID}, stats, opts)
	return err
}
