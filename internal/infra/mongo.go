package infra

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewMongo establishes a MongoDB connection, validates it with a ping, and
// returns the application database handle.
func NewMongo(uri, dbName string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return client.Database(dbName), nil
}

// EnsureIndexes creates the indexes the domain relies on. Idempotent: Mongo
// treats re-creation of an identical index as a no-op.
//   - usuarios.email  unique
//   - clientes.email  unique
//   - productos.nombre text (powers buscarProducto)
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	if _, err := db.Collection("usuarios").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("index usuarios.email: %w", err)
	}

	if _, err := db.Collection("clientes").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("index clientes.email: %w", err)
	}

	if _, err := db.Collection("productos").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "nombre", Value: "text"}},
	}); err != nil {
		return fmt.Errorf("index productos.nombre: %w", err)
	}

	return nil
}
