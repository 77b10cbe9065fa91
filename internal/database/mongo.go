package database

import (
	"context"
	"fmt"
	"time"

	"shoestock/internal/models"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDB mirrors the inventory into one collection keyed by shoe code.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDB(ctx context.Context, uri, dbName string) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Info().Str("uri", uri).Str("database", dbName).Msg("connected to MongoDB")

	return &MongoDB{
		Client:   client,
		Database: client.Database(dbName),
	}, nil
}

func (m *MongoDB) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.Client.Disconnect(ctx)
}

// CodeFilter selects the document holding a shoe code.
func CodeFilter(code string) bson.M {
	return bson.M{"code": code}
}

// UpsertShoe replaces the document with the shoe's code, inserting it when
// absent. It reports whether an existing document was replaced.
func (m *MongoDB) UpsertShoe(ctx context.Context, collectionName string, shoe models.Shoe) (bool, error) {
	collection := m.Database.Collection(collectionName)
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	result, err := collection.ReplaceOne(ctx, CodeFilter(shoe.Code), shoe, opts)
	if err != nil {
		return false, fmt.Errorf("failed to upsert shoe with code %s: %w", shoe.Code, err)
	}

	wasUpdate := result.MatchedCount > 0
	log.Debug().Str("code", shoe.Code).Bool("updated", wasUpdate).Msg("shoe upserted")
	return wasUpdate, nil
}

// FetchShoes returns every shoe in the collection in insertion order.
func (m *MongoDB) FetchShoes(ctx context.Context, collectionName string) ([]models.Shoe, error) {
	collection := m.Database.Collection(collectionName)
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find shoes: %w", err)
	}
	defer cursor.Close(ctx)

	var shoes []models.Shoe
	if err := cursor.All(ctx, &shoes); err != nil {
		return nil, fmt.Errorf("failed to decode shoes: %w", err)
	}
	return shoes, nil
}

// PushResult counts the outcome of a push.
type PushResult struct {
	Total   int
	New     int
	Updated int
	Failed  int
}

// Push upserts every shoe, continuing past individual failures.
func (m *MongoDB) Push(ctx context.Context, collectionName string, shoes []models.Shoe) PushResult {
	result := PushResult{Total: len(shoes)}
	for i, shoe := range shoes {
		wasUpdate, err := m.UpsertShoe(ctx, collectionName, shoe)
		if err != nil {
			log.Warn().Err(err).Int("record", i+1).Str("code", shoe.Code).Msg("failed to push shoe")
			result.Failed++
			continue
		}
		if wasUpdate {
			result.Updated++
		} else {
			result.New++
		}
	}
	return result
}
