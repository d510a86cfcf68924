package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kotlang/accountGo/logger"
	"github.com/Kotlang/accountGo/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

var ErrIdentityNotFound = errors.New("no identity record found")

type LoginRepositoryInterface interface {
	// DeleteById fails with ErrIdentityNotFound when no record has the id.
	DeleteById(ctx context.Context, userId string) chan error
}

type LoginRepository struct {
	collection *mongo.Collection
}

func (t *LoginRepository) DeleteById(ctx context.Context, userId string) chan error {
	ch := make(chan error, 1)

	go func() {
		res, err := t.collection.DeleteOne(ctx, bson.M{"_id": userId})
		if err != nil {
			logger.Error("Error deleting login info", zap.String("userId", userId), zap.Error(err))
			ch <- err
			return
		}
		if res.DeletedCount == 0 {
			ch <- fmt.Errorf("%w for user %s", ErrIdentityNotFound, userId)
			return
		}
		ch <- nil
	}()
	return ch
}

func (t *LoginRepository) Save(ctx context.Context, login *models.LoginModel) chan error {
	ch := make(chan error, 1)

	go func() {
		_, err := t.collection.ReplaceOne(ctx, bson.M{"_id": login.Id()}, login, options.Replace().SetUpsert(true))
		ch <- err
	}()
	return ch
}

func (t *LoginRepository) IsExistsById(ctx context.Context, userId string) bool {
	count, err := t.collection.CountDocuments(ctx, bson.M{"_id": userId})
	if err != nil {
		logger.Error("Error fetching login info", zap.String("userId", userId), zap.Error(err))
		return false
	}
	return count > 0
}
