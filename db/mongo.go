package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"poster-studio/config"
)

// Connect opens the Mongo database used for generation logs and
// ensures its indexes. Callers own the returned handle; generation
// logging is optional, so callers skip Connect when no URI is set.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	dbName := cfg.Database
	if dbName == "" {
		dbName = "posterstudio"
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	database := client.Database(dbName)
	if err := ensureIndexes(ctx, database); err != nil {
		return nil, err
	}
	return database, nil
}

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// generation_logs: newest-first queries for monitoring
	_, err := d.Collection("generation_logs").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "requested_at", Value: -1}},
		Options: options.Index().SetName("idx_requested_at_desc"),
	})
	return err
}
