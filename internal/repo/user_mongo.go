package repo

import (
	"context"
	"time"

	models "github.com/rahul12st/Manipal-Marketplace-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserRepository stores users in a MongoDB collection.
type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewMongoUserRepository(coll *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{coll: coll}
}

func (r *MongoUserRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	user.ID = primitive.NewObjectID()
	user.User_id = user.ID.Hex()

	_, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *MongoUserRepository) GetByID(ctx context.Context, userID string) (models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (r *MongoUserRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) SetLikedProducts(ctx context.Context, userID string, liked []string) (models.User, error) {
	filter := bson.M{"user_id": userID}
	update := bson.M{"$set": bson.M{
		"liked_products": liked,
		"updated_at":     time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return models.User{}, err
	}
	if result.MatchedCount == 0 {
		return models.User{}, ErrUserNotFound
	}
	return r.GetByID(ctx, userID)
}

func (r *MongoUserRepository) UpdateTokens(ctx context.Context, userID string, token string, refreshToken string) error {
	filter := bson.M{"user_id": userID}
	update := bson.M{"$set": bson.M{
		"token":         token,
		"refresh_token": refreshToken,
		"updated_at":    time.Now(),
	}}

	_, err := r.coll.UpdateOne(ctx, filter, update)
	return err
}
