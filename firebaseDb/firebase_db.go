package firebaseDb

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	firebaseAuth "firebase.google.com/go/v4/auth"
	"github.com/Kotlang/accountGo/db"
	"github.com/Kotlang/accountGo/logger"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const usersCollectionName = "users"

// IdentityClient is the part of the Firebase Authentication client used here.
type IdentityClient interface {
	DeleteUser(ctx context.Context, uid string) error
}

// DocumentClient deletes a single document by collection and id.
type DocumentClient interface {
	DeleteDoc(ctx context.Context, collection, id string) error
}

// FirebaseDb keeps identity records in Firebase Authentication and profile
// documents in Cloud Firestore.
type FirebaseDb struct {
	identity  IdentityClient
	documents DocumentClient
	closer    func() error
}

func NewApp(ctx context.Context, projectID, credentialsFile string) (*firebase.App, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	return firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
}

func NewFirebaseDb(ctx context.Context, app *firebase.App) (*FirebaseDb, *firebaseAuth.Client, error) {
	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("creating auth client: %w", err)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("creating firestore client: %w", err)
	}

	fdb := &FirebaseDb{
		identity:  authClient,
		documents: &firestoreDocuments{client: firestoreClient},
		closer:    firestoreClient.Close,
	}
	return fdb, authClient, nil
}

// NewFirebaseDbWithClients builds a store from already constructed clients.
func NewFirebaseDbWithClients(identity IdentityClient, documents DocumentClient) *FirebaseDb {
	return &FirebaseDb{identity: identity, documents: documents}
}

func (f *FirebaseDb) Login() db.LoginRepositoryInterface {
	return &identityRepository{client: f.identity}
}

func (f *FirebaseDb) Users() db.UserRepositoryInterface {
	return &documentRepository{client: f.documents, collection: usersCollectionName}
}

func (f *FirebaseDb) Close() error {
	if f.closer == nil {
		return nil
	}
	return f.closer()
}

type identityRepository struct {
	client IdentityClient
}

func (r *identityRepository) DeleteById(ctx context.Context, userId string) chan error {
	ch := make(chan error, 1)

	go func() {
		err := r.client.DeleteUser(ctx, userId)
		if err != nil {
			logger.Error("Error deleting firebase user", zap.String("userId", userId), zap.Error(err))
			if firebaseAuth.IsUserNotFound(err) {
				err = fmt.Errorf("%w: %w", db.ErrIdentityNotFound, err)
			}
		}
		ch <- err
	}()
	return ch
}

type documentRepository struct {
	client     DocumentClient
	collection string
}

func (r *documentRepository) DeleteById(ctx context.Context, userId string) chan error {
	ch := make(chan error, 1)

	go func() {
		err := r.client.DeleteDoc(ctx, r.collection, userId)
		if err != nil {
			logger.Error("Error deleting firestore document",
				zap.String("collection", r.collection),
				zap.String("userId", userId),
				zap.Error(err))
		}
		ch <- err
	}()
	return ch
}

type firestoreDocuments struct {
	client *firestore.Client
}

// DeleteDoc does not fail when the document is missing.
func (d *firestoreDocuments) DeleteDoc(ctx context.Context, collection, id string) error {
	_, err := d.client.Collection(collection).Doc(id).Delete(ctx)
	return err
}
