package database

import (
	"context"
	"fmt"
	"time"
	"whale/src/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// SetupDB connects to the configured MongoDB deployment and returns the
// database handle used by the repositories. The client is long-lived and
// shared by every request.
func SetupDB(cfg *config.Config) (*mongo.Database, error) {
	uri := cfg.Databases.Mongo.URI
	if uri == "" {
		return nil, fmt.Errorf("no MongoDB connection string configured; set MONGODB_URI or databases.mongo.uri")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w\nPlease check your database configuration and ensure it's running", err)
	}

	return client.Database(cfg.Databases.Mongo.Database), nil
}
