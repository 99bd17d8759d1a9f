package repository

import (
	"context"

	"eduverse-quiz-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SessionRepository struct {
	Col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{Col: db.Collection("sessions")}
}

func (r *SessionRepository) Create(ctx context.Context, session *models.QuizSession) error {
	if session.ID == "" {
		session.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, session)
	return err
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*models.QuizSession, error) {
	var session models.QuizSession
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

// UpdateVersioned replaces the stored session only if nobody else has
// written it since it was read. The replacement matches on the version the
// caller read and bumps it, so two interleaved submits against the same
// session cannot both win. Returns false when the version check failed.
func (r *SessionRepository) UpdateVersioned(ctx context.Context, session *models.QuizSession) (bool, error) {
	readVersion := session.Version
	session.Version = readVersion + 1
	res, err := r.Col.ReplaceOne(ctx, bson.M{"_id": session.ID, "version": readVersion}, session)
	if err != nil {
		session.Version = readVersion
		return false, err
	}
	if res.MatchedCount == 0 {
		session.Version = readVersion
		return false, nil
	}
	return true, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
