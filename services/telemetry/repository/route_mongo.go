package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoTimeout = 5 * time.Second

// RouteMongoRepo stores routes as documents keyed by route id
type RouteMongoRepo struct {
	collection *mongo.Collection
}

// NewRouteMongoRepository creates a new MongoDB route repository
func NewRouteMongoRepository(collection *mongo.Collection) *RouteMongoRepo {
	return &RouteMongoRepo{collection: collection}
}

// EnsureIndexes creates the secondary indexes used by the list queries
func (r *RouteMongoRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "vehicle_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create route indexes: %w", err)
	}
	return nil
}

// FindByID retrieves a route by ID
func (r *RouteMongoRepo) FindByID(ctx context.Context, routeID string) (*models.Route, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	var route models.Route
	err := r.collection.FindOne(ctx, bson.M{"_id": routeID}).Decode(&route)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: %s", models.ErrRouteNotFound, routeID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get route %s: %w", routeID, err)
	}
	return &route, nil
}

// Save replaces the stored document in a single write
func (r *RouteMongoRepo) Save(ctx context.Context, route *models.Route) error {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": route.ID}, route)
	if err != nil {
		return fmt.Errorf("failed to update route %s: %w", route.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", models.ErrRouteNotFound, route.ID)
	}
	return nil
}

// Create inserts a new route
func (r *RouteMongoRepo) Create(ctx context.Context, route *models.Route) error {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, route); err != nil {
		return fmt.Errorf("failed to insert route: %w", err)
	}
	return nil
}

// List returns every route, newest first
func (r *RouteMongoRepo) List(ctx context.Context) ([]*models.Route, error) {
	return r.find(ctx, bson.M{})
}

// ListByVehicle returns the routes assigned to a vehicle, newest first
func (r *RouteMongoRepo) ListByVehicle(ctx context.Context, vehicleID string) ([]*models.Route, error) {
	return r.find(ctx, bson.M{"vehicle_id": vehicleID})
}

func (r *RouteMongoRepo) find(ctx context.Context, filter bson.M) ([]*models.Route, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	defer cursor.Close(ctx)

	routes := []*models.Route{}
	if err := cursor.All(ctx, &routes); err != nil {
		return nil, fmt.Errorf("failed to decode routes: %w", err)
	}
	return routes, nil
}

// Delete removes a route
func (r *RouteMongoRepo) Delete(ctx context.Context, routeID string) error {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": routeID})
	if err != nil {
		return fmt.Errorf("failed to delete route %s: %w", routeID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", models.ErrRouteNotFound, routeID)
	}
	return nil
}
