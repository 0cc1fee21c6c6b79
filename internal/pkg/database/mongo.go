package database

import (
	"context"
	"fmt"
	"time"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient represents a MongoDB client bound to one database
type MongoClient struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoClient connects to MongoDB and verifies the connection
func NewMongoClient(config models.MongoConfig) (*MongoClient, error) {
	if config.URI == "" {
		return nil, fmt.Errorf("mongo uri not provided")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &MongoClient{
		Client:   client,
		Database: client.Database(config.Database),
	}, nil
}

// Collection returns a handle to the named collection
func (m *MongoClient) Collection(name string) *mongo.Collection {
	return m.Database.Collection(name)
}

// Ping checks the connection
func (m *MongoClient) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, nil)
}

// Close disconnects the client
func (m *MongoClient) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
