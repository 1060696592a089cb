package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mmgp/internal/config"
	"mmgp/internal/repository"
)

type store struct {
	responses repository.ResponseRepo
	users     repository.UserRepo
	close     func()
}

// openStore connects the configured record backend.
func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	if cfg.StoreBackend == config.BackendSQLite {
		db, err := repository.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Printf("Opened SQLite database at %s", cfg.SQLitePath)
		return &store{
			responses: repository.NewSQLiteResponseRepo(db),
			users:     repository.NewSQLiteUserRepo(db),
			close:     func() { db.Close() },
		}, nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	log.Println("Connected to MongoDB")

	db := client.Database(cfg.MongoDB)
	return &store{
		responses: repository.NewResponseRepo(db),
		users:     repository.NewUserRepo(db),
		close:     func() { client.Disconnect(context.Background()) },
	}, nil
}
