package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoItem struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoBackend keeps one document per key; the serialized collection is
// stored as a string so its byte layout survives untouched.
type MongoBackend struct {
	coll *mongo.Collection
}

func NewMongoBackend(coll *mongo.Collection) *MongoBackend {
	return &MongoBackend{coll: coll}
}

func (m *MongoBackend) GetItem(ctx context.Context, key string) ([]byte, bool, error) {
	var item mongoItem
	err := m.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(item.Value), true, nil
}

func (m *MongoBackend) SetItem(ctx context.Context, key string, value []byte) error {
	item := mongoItem{Key: key, Value: string(value), UpdatedAt: time.Now().UTC()}
	_, err := m.coll.ReplaceOne(ctx, bson.M{"_id": key}, item, options.Replace().SetUpsert(true))
	return err
}

func (m *MongoBackend) RemoveItem(ctx context.Context, key string) error {
	_, err := m.coll.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
