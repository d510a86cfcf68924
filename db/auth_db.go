package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	loginCollectionName = "login"
	usersCollectionName = "users"
)

// AccountDbInterface is the pair of stores a user account lives in.
type AccountDbInterface interface {
	// Login holds identity records.
	Login() LoginRepositoryInterface
	// Users holds profile documents.
	Users() UserRepositoryInterface
}

type AuthDb struct {
	Db *mongo.Database
}

func NewAuthDb(client *mongo.Client, database string) *AuthDb {
	return &AuthDb{Db: client.Database(database)}
}

// Connect dials uri and pings the primary before returning.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

func (a *AuthDb) Login() LoginRepositoryInterface {
	return &LoginRepository{collection: a.Db.Collection(loginCollectionName)}
}

func (a *AuthDb) Users() UserRepositoryInterface {
	return &ProfileRepository{collection: a.Db.Collection(usersCollectionName)}
}
