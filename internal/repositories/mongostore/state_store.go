package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	portsrepo "github.com/SscSPs/event_split_app/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "app_state"

// stateDocument is the stored shape of one named store. State holds the JSON blob
// as a string so the document stays readable in the shell.
type stateDocument struct {
	StoreName string    `bson:"_id"`
	State     string    `bson:"state"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// StateStore keeps each named store as one document in the app_state collection.
type StateStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

var _ portsrepo.StateStore = (*StateStore)(nil)

// New connects to MongoDB and pings the primary.
func New(ctx context.Context, uri, database string) (*StateStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}
	return &StateStore{
		client:     client,
		collection: client.Database(database).Collection(collectionName),
	}, nil
}

func (s *StateStore) LoadState(ctx context.Context, storeName string) ([]byte, error) {
	var doc stateDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": storeName}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find %s: %w", storeName, err)
	}
	return []byte(doc.State), nil
}

func (s *StateStore) SaveState(ctx context.Context, storeName string, state []byte) error {
	doc := stateDocument{StoreName: storeName, State: string(state), UpdatedAt: time.Now().UTC()}
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": storeName}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo replace %s: %w", storeName, err)
	}
	return nil
}

// Close disconnects the client.
func (s *StateStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
