package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/database"
)

var ErrUserNotFound = errors.New("user not found")

// CartItem references a product by id; the product itself is resolved at
// read time (see ResolveCart).
type CartItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

type Cart struct {
	Items []CartItem `bson:"items" json:"items"`
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Role      string             `bson:"role" json:"role"`
	Cart      Cart               `bson:"cart" json:"cart"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// AddToCart increments the quantity when the product is already in the
// cart, otherwise appends a new item with quantity 1. It only mutates the
// in-memory cart; call SaveCart to persist.
func (u *User) AddToCart(productID primitive.ObjectID) {
	for i := range u.Cart.Items {
		if u.Cart.Items[i].ProductID == productID {
			u.Cart.Items[i].Quantity++
			return
		}
	}
	u.Cart.Items = append(u.Cart.Items, CartItem{ProductID: productID, Quantity: 1})
}

// RemoveFromCart deletes the item referencing productID. Removing an id
// that is not in the cart is a no-op.
func (u *User) RemoveFromCart(productID primitive.ObjectID) {
	for i, item := range u.Cart.Items {
		if item.ProductID == productID {
			u.Cart.Items = append(u.Cart.Items[:i], u.Cart.Items[i+1:]...)
			return
		}
	}
}

func (u *User) ClearCart() {
	u.Cart.Items = []CartItem{}
}

// SaveCart writes the in-memory cart back to the user document.
func (u *User) SaveCart(ctx context.Context) error {
	_, err := database.UserCollection.UpdateOne(
		ctx,
		bson.M{"_id": u.ID},
		bson.M{"$set": bson.M{"cart.items": u.Cart.Items}},
	)
	if err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func FindUserByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	var user User
	err := database.UserCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}
