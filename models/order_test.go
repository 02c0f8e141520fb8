package models

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewOrder_SnapshotsCart(t *testing.T) {
	user := &User{ID: primitive.NewObjectID(), Email: "buyer@example.com"}
	product := Product{
		ID:    primitive.NewObjectID(),
		Title: "Book",
		Price: 12.5,
	}

	order := NewOrder(user, []PopulatedCartItem{{Product: product, Quantity: 2}})

	require.Len(t, order.Products, 1)
	assert.Equal(t, 2, order.Products[0].Quantity)
	assert.Equal(t, product, order.Products[0].Product)
	assert.Equal(t, "buyer@example.com", order.User.Email)
	assert.Equal(t, user.ID, order.User.UserID)
	assert.False(t, order.ID.IsZero())
}

func TestOrderTotal_UnaffectedByLaterPriceChange(t *testing.T) {
	user := &User{ID: primitive.NewObjectID(), Email: "buyer@example.com"}
	product := Product{ID: primitive.NewObjectID(), Title: "Book", Price: 10}

	order := NewOrder(user, []PopulatedCartItem{{Product: product, Quantity: 2}})
	require.Equal(t, 20.0, order.Total())

	// Simulate an admin price edit after the order was placed.
	product.Price = 99

	assert.Equal(t, 20.0, order.Total())
	assert.Equal(t, 10.0, order.Products[0].Product.Price)
}

func TestOrderTotal_SumsQuantityTimesPrice(t *testing.T) {
	order := Order{Products: []OrderLine{
		{Quantity: 2, Product: Product{Price: 10}},
		{Quantity: 1, Product: Product{Price: 5.5}},
		{Quantity: 3, Product: Product{Price: 0.5}},
	}}

	assert.InDelta(t, 27.0, order.Total(), 1e-9)
}

func TestOrderTotal_EmptyOrder(t *testing.T) {
	assert.Equal(t, 0.0, Order{}.Total())
}

func TestCartTotal(t *testing.T) {
	items := []PopulatedCartItem{
		{Product: Product{Price: 19.99}, Quantity: 2},
		{Product: Product{Price: 5}, Quantity: 1},
	}

	assert.InDelta(t, 44.98, CartTotal(items), 1e-9)
}

// placementStub records what the snapshot-and-clear unit did to the
// persistence layer.
type placementStub struct {
	inserted  *Order
	saved     []CartItem
	persisted bool
	insertErr error
}

func stubPlacement(t *testing.T, user *User, items []PopulatedCartItem, s *placementStub) {
	t.Helper()
	origLookup := lookupOrderUser
	origResolve := resolveOrderCart
	origInsert := insertOrder
	origPersist := persistCart

	lookupOrderUser = func(ctx context.Context, id primitive.ObjectID) (*User, error) {
		assert.Equal(t, user.ID, id)
		return user, nil
	}
	resolveOrderCart = func(ctx context.Context, u *User) ([]PopulatedCartItem, error) {
		return items, nil
	}
	insertOrder = func(ctx context.Context, order *Order) error {
		if s.insertErr != nil {
			return s.insertErr
		}
		s.inserted = order
		return nil
	}
	persistCart = func(ctx context.Context, u *User) error {
		s.persisted = true
		s.saved = append([]CartItem{}, u.Cart.Items...)
		return nil
	}

	t.Cleanup(func() {
		lookupOrderUser = origLookup
		resolveOrderCart = origResolve
		insertOrder = origInsert
		persistCart = origPersist
	})
}

func TestPlaceOrder_ClearsCartAfterPlacement(t *testing.T) {
	product := Product{ID: primitive.NewObjectID(), Title: "Book", Price: 12.5}
	user := &User{
		ID:    primitive.NewObjectID(),
		Email: "buyer@example.com",
		Cart:  Cart{Items: []CartItem{{ProductID: product.ID, Quantity: 2}}},
	}
	stub := &placementStub{}
	stubPlacement(t, user, []PopulatedCartItem{{Product: product, Quantity: 2}}, stub)

	order, err := placeOrder(context.Background(), user.ID)

	require.NoError(t, err)
	require.NotNil(t, stub.inserted)
	assert.Equal(t, order, stub.inserted)
	require.Len(t, order.Products, 1)
	assert.Equal(t, 25.0, order.Total())

	// The cleared cart is what gets persisted, in the same unit.
	require.True(t, stub.persisted)
	assert.Empty(t, stub.saved)
	assert.Empty(t, user.Cart.Items)
}

func TestPlaceOrder_EmptyCartAborts(t *testing.T) {
	// A second racing request re-reads the cart and finds it already
	// emptied by the first; no second order may be written.
	user := &User{ID: primitive.NewObjectID(), Email: "buyer@example.com"}
	stub := &placementStub{}
	stubPlacement(t, user, nil, stub)

	order, err := placeOrder(context.Background(), user.ID)

	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, order)
	assert.Nil(t, stub.inserted)
	assert.False(t, stub.persisted)
}

func TestPlaceOrder_InsertFailureLeavesCartIntact(t *testing.T) {
	product := Product{ID: primitive.NewObjectID(), Title: "Book", Price: 12.5}
	user := &User{
		ID:   primitive.NewObjectID(),
		Cart: Cart{Items: []CartItem{{ProductID: product.ID, Quantity: 1}}},
	}
	stub := &placementStub{insertErr: errors.New("write conflict")}
	stubPlacement(t, user, []PopulatedCartItem{{Product: product, Quantity: 1}}, stub)

	order, err := placeOrder(context.Background(), user.ID)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.False(t, stub.persisted)
	assert.Len(t, user.Cart.Items, 1)
}
