package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepo struct {
	DB *mongo.Database
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{DB: db}
}

func (r *MongoRepo) products() *mongo.Collection { return r.DB.Collection("products") }
func (r *MongoRepo) orders() *mongo.Collection   { return r.DB.Collection("orders") }
func (r *MongoRepo) users() *mongo.Collection    { return r.DB.Collection("users") }

// nextID hands out ids from a per-collection counter document, incremented
// atomically so concurrent creates never collide.
func (r *MongoRepo) nextID(ctx context.Context, name string) (int64, error) {
	res := r.DB.Collection("counters").FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&doc); err != nil {
		return 0, fmt.Errorf("next id for %s: %w", name, err)
	}
	return doc.Seq, nil
}
