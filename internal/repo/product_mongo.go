package repo

import (
	"context"

	models "github.com/rahul12st/Manipal-Marketplace-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProductRepository stores products in a MongoDB collection.
type MongoProductRepository struct {
	coll *mongo.Collection
}

func NewMongoProductRepository(coll *mongo.Collection) *MongoProductRepository {
	return &MongoProductRepository{coll: coll}
}

func (r *MongoProductRepository) Create(ctx context.Context, product models.Product) (models.Product, error) {
	product.ID = primitive.NewObjectID()
	product.P_id = product.ID.Hex()

	_, err := r.coll.InsertOne(ctx, product)
	if err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (r *MongoProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	findOptions := options.Find()
	findOptions.SetSort(bson.M{"created_at": -1})

	cur, err := r.coll.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	return decodeProducts(ctx, cur)
}

func (r *MongoProductRepository) GetByID(ctx context.Context, pid string) (models.Product, error) {
	var product models.Product
	err := r.coll.FindOne(ctx, bson.M{"p_id": pid}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Product{}, ErrProductNotFound
		}
		return models.Product{}, err
	}
	return product, nil
}

func (r *MongoProductRepository) GetByOwner(ctx context.Context, ownerID string) ([]models.Product, error) {
	cur, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, err
	}
	return decodeProducts(ctx, cur)
}

func (r *MongoProductRepository) Search(ctx context.Context, query string) ([]models.Product, error) {
	pattern := primitive.Regex{Pattern: query, Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"name": pattern},
		{"description": pattern},
		{"category": pattern},
	}}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	return decodeProducts(ctx, cur)
}

func decodeProducts(ctx context.Context, cur *mongo.Cursor) ([]models.Product, error) {
	defer cur.Close(ctx)

	products := []models.Product{}
	for cur.Next(ctx) {
		var product models.Product
		if err := cur.Decode(&product); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return products, nil
}
