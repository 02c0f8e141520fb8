package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/database"
)

// PopulatedCartItem is a cart entry with its product resolved.
type PopulatedCartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// ResolveCart loads the products referenced by the user's cart with a
// single query and returns the entries in cart order. Entries whose
// product no longer exists are dropped from the result; the stored cart
// array is left as-is and reconciled the next time it is written.
func ResolveCart(ctx context.Context, user *User) ([]PopulatedCartItem, error) {
	if len(user.Cart.Items) == 0 {
		return []PopulatedCartItem{}, nil
	}

	ids := make([]primitive.ObjectID, 0, len(user.Cart.Items))
	for _, item := range user.Cart.Items {
		ids = append(ids, item.ProductID)
	}

	cursor, err := database.ProductCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("resolve cart products: %w", err)
	}

	var products []Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode cart products: %w", err)
	}

	byID := make(map[primitive.ObjectID]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	resolved := []PopulatedCartItem{}
	for _, item := range user.Cart.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		resolved = append(resolved, PopulatedCartItem{Product: product, Quantity: item.Quantity})
	}
	return resolved, nil
}

// CartTotal sums price x quantity over the resolved entries.
func CartTotal(items []PopulatedCartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}
