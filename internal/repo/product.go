package repo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shopapi/internal/models"
	"shopapi/internal/service"
	"shopapi/internal/transport"
)

func (r *MongoRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	cur, err := r.products().Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "id", Value: -1}}))
	if err != nil {
		return nil, err
	}

	items := []models.Product{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepo) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	var prod models.Product
	if err := r.products().FindOne(ctx, bson.M{"id": id}).Decode(&prod); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &prod, nil
}

func (r *MongoRepo) CreateProduct(ctx context.Context, prod *models.Product) error {
	id, err := r.nextID(ctx, "products")
	if err != nil {
		return err
	}
	prod.ID = id

	_, err = r.products().InsertOne(ctx, prod)
	return err
}

func (r *MongoRepo) UpdateProduct(ctx context.Context, id int64, req transport.UpdateProductRequest) (*models.Product, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Price != nil {
		set["price"] = *req.Price
	}
	if req.Category != nil {
		set["category"] = *req.Category
	}
	if req.Stock != nil {
		set["stock"] = *req.Stock
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Images != nil {
		set["images"] = req.Images
	}

	var prod models.Product
	err := r.products().FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&prod)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &prod, nil
}

// DeleteProduct does not report whether a document was removed; delete is
// idempotent at the API surface.
func (r *MongoRepo) DeleteProduct(ctx context.Context, id int64) error {
	_, err := r.products().DeleteOne(ctx, bson.M{"id": id})
	return err
}
