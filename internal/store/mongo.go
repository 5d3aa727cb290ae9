// Package store provides MongoDB persistence and record retrieval.
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/aeroops/aviation-assistant/pkg/logger"
)

// Collection names. These match the names the original data-entry tooling
// created, so the assistant reads the same data it does.
const (
	CollAircraft       = "aircrafts"
	CollPurchaseOrders = "purchaseorders"
	CollFlightLogs     = "flightlogs"
	CollRFQs           = "rfqs"
	CollKnowledgeBase  = "knowledgebases"
	CollMessages       = "messages"
)

// Mongo owns the pooled client connection. Connect once at startup, inject
// wherever queries run, Close on shutdown.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
	logger *logger.Logger
}

// Connect establishes the connection pool and verifies it with a ping.
func Connect(ctx context.Context, uri, database string, log *logger.Logger) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongodb ping failed: %w", err)
	}

	log.Info("connected to mongodb", zap.String("database", database))

	return &Mongo{
		client: client,
		db:     client.Database(database),
		logger: log,
	}, nil
}

// Close releases the connection pool.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Ping verifies the connection is still alive.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Database returns the underlying database handle.
func (m *Mongo) Database() *mongo.Database {
	return m.db
}

// Collection returns a collection handle by name.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// EnsureIndexes creates the lookup indexes the pipeline and CRUD endpoints
// rely on. Creation is idempotent.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		CollAircraft: {
			{Keys: bson.D{{Key: "registrationNumber", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "manufacturer", Value: 1}, {Key: "model", Value: 1}}},
		},
		CollRFQs: {
			{Keys: bson.D{{Key: "rfqNumber", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "rfqStatus", Value: 1}, {Key: "submissionDeadline", Value: 1}}},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		CollMessages: {
			{Keys: bson.D{{Key: "conversationId", Value: 1}, {Key: "timestamp", Value: 1}}},
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "timestamp", Value: -1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := m.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", coll, err)
		}
	}
	return nil
}
