// Package mongo adapts the TransactionStore port to a MongoDB collection.
package mongo

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"
	driver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"expensetracker/internal/core"
	"expensetracker/internal/store"
)

const collectionName = "transactions"

// Connect opens a client for the given URI and verifies it with a ping.
// The caller owns the client and must Disconnect it on shutdown.
func Connect(ctx context.Context, uri string) (*driver.Client, error) {
	client, err := driver.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client, nil
}

type Store struct {
	coll *driver.Collection
}

func New(client *driver.Client, dbName string) *Store {
	return &Store{coll: client.Database(dbName).Collection(collectionName)}
}

func (s *Store) Insert(ctx context.Context, t core.Transaction) error {
	if _, err := s.coll.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	slog.InfoContext(ctx, "Transaction saved",
		"id", t.ID,
		"type", string(t.Type),
		"category", t.Category,
		"amount", t.Amount)
	return nil
}

func (s *Store) FindAll(ctx context.Context) ([]core.Transaction, error) {
	opts := options.Find().
		SetProjection(bson.D{{Key: "_id", Value: 0}}).
		SetLimit(store.FetchLimit)
	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find transactions: %w", err)
	}
	var items []core.Transaction
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	return items, nil
}

func (s *Store) DeleteByID(ctx context.Context, id string) (int64, error) {
	res, err := s.coll.DeleteOne(ctx, bson.D{{Key: "id", Value: id}})
	if err != nil {
		return 0, fmt.Errorf("delete transaction: %w", err)
	}
	return res.DeletedCount, nil
}
