package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shopapi/internal/models"
	"shopapi/internal/service"
	"shopapi/internal/transport"
)

func (r *MongoRepo) ListOrders(ctx context.Context) ([]models.Order, error) {
	cur, err := r.orders().Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}

	items := []models.Order{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	id, err := r.nextID(ctx, "orders")
	if err != nil {
		return err
	}
	order.ID = id

	_, err = r.orders().InsertOne(ctx, order)
	return err
}

func (r *MongoRepo) UpdateOrder(ctx context.Context, id int64, req transport.UpdateOrderRequest) (*models.Order, error) {
	set := bson.M{}
	if req.UserID != nil {
		set["userId"] = *req.UserID
	}
	if req.Items != nil {
		set["items"] = req.Items
	}
	if req.Total != nil {
		set["total"] = *req.Total
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if req.ShippingAddress != nil {
		set["shippingAddress"] = req.ShippingAddress
	}

	filter := bson.M{"id": id}
	if len(set) == 0 {
		return r.getOrder(ctx, id)
	}

	var order models.Order
	err := r.orders().FindOneAndUpdate(ctx,
		filter,
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *MongoRepo) getOrder(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	if err := r.orders().FindOne(ctx, bson.M{"id": id}).Decode(&order); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}
