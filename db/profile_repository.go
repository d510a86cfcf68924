package db

import (
	"context"

	"github.com/Kotlang/accountGo/logger"
	"github.com/Kotlang/accountGo/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type UserRepositoryInterface interface {
	// DeleteById succeeds when no document has the id.
	DeleteById(ctx context.Context, userId string) chan error
}

type ProfileRepository struct {
	collection *mongo.Collection
}

func (p *ProfileRepository) DeleteById(ctx context.Context, userId string) chan error {
	ch := make(chan error, 1)

	go func() {
		_, err := p.collection.DeleteOne(ctx, bson.M{"_id": userId})
		if err != nil {
			logger.Error("Error deleting profile", zap.String("userId", userId), zap.Error(err))
		}
		ch <- err
	}()
	return ch
}

func (p *ProfileRepository) Save(ctx context.Context, profile *models.ProfileModel) chan error {
	ch := make(chan error, 1)

	go func() {
		_, err := p.collection.ReplaceOne(ctx, bson.M{"_id": profile.Id()}, profile, options.Replace().SetUpsert(true))
		ch <- err
	}()
	return ch
}

func (p *ProfileRepository) IsExistsById(ctx context.Context, userId string) bool {
	count, err := p.collection.CountDocuments(ctx, bson.M{"_id": userId})
	if err != nil {
		logger.Error("Error fetching profile", zap.String("userId", userId), zap.Error(err))
		return false
	}
	return count > 0
}
