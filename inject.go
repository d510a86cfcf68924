package main

import (
	"context"
	"fmt"

	"github.com/Kotlang/accountGo/appconfig"
	"github.com/Kotlang/accountGo/auth"
	"github.com/Kotlang/accountGo/db"
	"github.com/Kotlang/accountGo/firebaseDb"
	"github.com/Kotlang/accountGo/metrics"
	"github.com/Kotlang/accountGo/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Inject struct {
	AccountDb db.AccountDbInterface
	Verifier  auth.TokenVerifier

	Registry *prometheus.Registry
	Metrics  *metrics.Recorder

	DeleteUserHandler   *service.DeleteUserHandler
	UserDeletionService *service.UserDeletionService

	closers []func(context.Context) error
}

func NewInject(ctx context.Context, cfg appconfig.AppConfig) (*Inject, error) {
	var (
		accountDb db.AccountDbInterface
		verifier  auth.TokenVerifier
		closers   []func(context.Context) error
	)

	switch cfg.Backend {
	case appconfig.BackendFirebase:
		app, err := firebaseDb.NewApp(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("initializing firebase: %w", err)
		}
		fdb, authClient, err := firebaseDb.NewFirebaseDb(ctx, app)
		if err != nil {
			return nil, err
		}
		accountDb = fdb
		verifier = firebaseDb.NewIdTokenVerifier(authClient)
		closers = append(closers, func(context.Context) error { return fdb.Close() })
	default:
		client, err := db.Connect(ctx, cfg.Mongo.URI)
		if err != nil {
			return nil, fmt.Errorf("connecting to mongo: %w", err)
		}
		accountDb = db.NewAuthDb(client, cfg.Mongo.Database)
		verifier = auth.NewJwtVerifier(cfg.AccessSecret)
		closers = append(closers, client.Disconnect)
	}

	inj := NewInjectWith(accountDb, verifier)
	inj.closers = closers
	return inj, nil
}

// NewInjectWith wires the services on top of already constructed clients.
func NewInjectWith(accountDb db.AccountDbInterface, verifier auth.TokenVerifier) *Inject {
	inj := &Inject{
		AccountDb: accountDb,
		Verifier:  verifier,
	}

	inj.Registry = prometheus.NewRegistry()
	inj.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	inj.Metrics = metrics.NewRecorder(inj.Registry)

	inj.DeleteUserHandler = service.NewDeleteUserHandler(inj.AccountDb)
	inj.UserDeletionService = service.NewUserDeletionService(inj.DeleteUserHandler, inj.Metrics)

	return inj
}

// Close releases the service clients in reverse order of creation.
func (inj *Inject) Close(ctx context.Context) {
	for i := len(inj.closers) - 1; i >= 0; i-- {
		_ = inj.closers[i](ctx)
	}
}
