package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"shopapi/internal/models"
	"shopapi/internal/service"
)

func (r *MongoRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.users().FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *MongoRepo) CreateUser(ctx context.Context, user *models.User) error {
	id, err := r.nextID(ctx, "users")
	if err != nil {
		return err
	}
	user.ID = id

	if _, err := r.users().InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return service.ErrEmailTaken
		}
		return err
	}
	return nil
}
