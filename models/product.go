package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/database"
)

var ErrProductNotFound = errors.New("product not found")

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title" binding:"required"`
	Description string             `bson:"description" json:"description" binding:"required"`
	Price       float64            `bson:"price" json:"price" binding:"required"`
	ImageURL    string             `bson:"imageUrl" json:"imageUrl" binding:"required"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func FindProductByID(ctx context.Context, id primitive.ObjectID) (*Product, error) {
	var product Product
	err := database.ProductCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &product, nil
}

// FindProductsPage returns at most limit products starting at offset, in
// insertion order.
func FindProductsPage(ctx context.Context, offset, limit int64) ([]Product, error) {
	opts := options.Find().SetSkip(offset).SetLimit(limit)
	cursor, err := database.ProductCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}

	products := []Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func CountProducts(ctx context.Context) (int64, error) {
	count, err := database.ProductCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}
