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

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyCart     = errors.New("cart is empty")
)

type OrderUser struct {
	Email  string             `bson:"email" json:"email"`
	UserID primitive.ObjectID `bson:"userId" json:"userId"`
}

// OrderLine embeds a full copy of the product as it was at order time.
// Later edits to the live product never change this snapshot.
type OrderLine struct {
	Quantity int     `bson:"quantity" json:"quantity"`
	Product  Product `bson:"product" json:"product"`
}

type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      OrderUser          `bson:"user" json:"user"`
	Products  []OrderLine        `bson:"products" json:"products"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Total recomputes the order total from the snapshot values.
func (o Order) Total() float64 {
	var total float64
	for _, line := range o.Products {
		total += float64(line.Quantity) * line.Product.Price
	}
	return total
}

// NewOrder snapshots the resolved cart into an immutable order record.
func NewOrder(user *User, items []PopulatedCartItem) *Order {
	lines := make([]OrderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, OrderLine{Quantity: item.Quantity, Product: item.Product})
	}
	return &Order{
		ID: primitive.NewObjectID(),
		User: OrderUser{
			Email:  user.Email,
			UserID: user.ID,
		},
		Products:  lines,
		CreatedAt: time.Now(),
	}
}

// Swappable in tests.
var (
	lookupOrderUser  = FindUserByID
	resolveOrderCart = ResolveCart
	insertOrder      = func(ctx context.Context, order *Order) error {
		if _, err := database.OrderCollection.InsertOne(ctx, order); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		return nil
	}
	persistCart = func(ctx context.Context, user *User) error {
		return user.SaveCart(ctx)
	}
)

// PlaceOrder snapshots the user's cart into an order and clears the cart
// inside a single transaction, so the order cannot exist with the cart
// left full (or vice versa). Requires a replica-set deployment.
func PlaceOrder(ctx context.Context, userID primitive.ObjectID) (*Order, error) {
	sess, err := database.Client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	result, err := sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return placeOrder(sc, userID)
	})
	if err != nil {
		return nil, err
	}
	return result.(*Order), nil
}

// placeOrder is the snapshot-and-clear unit PlaceOrder runs transactionally.
// The cart is re-read here rather than taken from the caller: a second
// racing request finds it already empty and gets ErrEmptyCart instead of a
// duplicate order.
func placeOrder(ctx context.Context, userID primitive.ObjectID) (*Order, error) {
	user, err := lookupOrderUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := resolveOrderCart(ctx, user)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order := NewOrder(user, items)
	if err := insertOrder(ctx, order); err != nil {
		return nil, err
	}

	user.ClearCart()
	if err := persistCart(ctx, user); err != nil {
		return nil, err
	}
	return order, nil
}

func FindOrderByID(ctx context.Context, id primitive.ObjectID) (*Order, error) {
	var order Order
	err := database.OrderCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return &order, nil
}

func FindOrdersByUser(ctx context.Context, userID primitive.ObjectID) ([]Order, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := database.OrderCollection.Find(ctx, bson.M{"user.userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}

	orders := []Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}
