package repository

import (
	"context"

	"eduverse-quiz-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

// activeFilter excludes soft-deleted questions from every pool query.
func activeFilter(extra bson.M) bson.M {
	filter := bson.M{"status": bson.M{"$ne": "deleted"}}
	for k, v := range extra {
		filter[k] = v
	}
	return filter
}

func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*models.Question, error) {
	var question models.Question
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

// FindFirstByCourse returns the first question of the course pool in id
// order, nil if the pool is empty.
func (r *QuestionRepository) FindFirstByCourse(ctx context.Context, courseID string) (*models.Question, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})
	var question models.Question
	err := r.Col.FindOne(ctx, activeFilter(bson.M{"course_id": courseID}), opts).Decode(&question)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

// FindByDifficultyExcluding returns the first course-pool question at the
// given tier whose id is not in excludeIDs, nil when the tier is exhausted.
func (r *QuestionRepository) FindByDifficultyExcluding(ctx context.Context, courseID, difficulty string, excludeIDs []string) (*models.Question, error) {
	filter := activeFilter(bson.M{
		"course_id":  courseID,
		"difficulty": difficulty,
	})
	if len(excludeIDs) > 0 {
		filter["_id"] = bson.M{"$nin": excludeIDs}
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})
	var question models.Question
	err := r.Col.FindOne(ctx, filter, opts).Decode(&question)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) CountByCourse(ctx context.Context, courseID string) (int64, error) {
	return r.Col.CountDocuments(ctx, activeFilter(bson.M{"course_id": courseID}))
}

func (r *QuestionRepository) FindByCourse(ctx context.Context, courseID string) ([]models.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.Col.Find(ctx, activeFilter(bson.M{"course_id": courseID}), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	if question.ID == "" {
		question.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, question)
	return err
}

func (r *QuestionRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": "deleted"}})
	return err
}
