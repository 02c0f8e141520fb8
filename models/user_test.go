package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddToCart_NewProduct(t *testing.T) {
	user := &User{}
	productID := primitive.NewObjectID()

	user.AddToCart(productID)

	require.Len(t, user.Cart.Items, 1)
	assert.Equal(t, productID, user.Cart.Items[0].ProductID)
	assert.Equal(t, 1, user.Cart.Items[0].Quantity)
}

func TestAddToCart_SameProductTwiceIncrementsQuantity(t *testing.T) {
	user := &User{}
	productID := primitive.NewObjectID()

	user.AddToCart(productID)
	user.AddToCart(productID)

	require.Len(t, user.Cart.Items, 1)
	assert.Equal(t, 2, user.Cart.Items[0].Quantity)
}

func TestAddToCart_KeepsItemOrder(t *testing.T) {
	user := &User{}
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	user.AddToCart(first)
	user.AddToCart(second)
	user.AddToCart(first)

	require.Len(t, user.Cart.Items, 2)
	assert.Equal(t, first, user.Cart.Items[0].ProductID)
	assert.Equal(t, 2, user.Cart.Items[0].Quantity)
	assert.Equal(t, second, user.Cart.Items[1].ProductID)
	assert.Equal(t, 1, user.Cart.Items[1].Quantity)
}

func TestRemoveFromCart(t *testing.T) {
	productID := primitive.NewObjectID()
	other := primitive.NewObjectID()
	user := &User{Cart: Cart{Items: []CartItem{
		{ProductID: productID, Quantity: 2},
		{ProductID: other, Quantity: 1},
	}}}

	user.RemoveFromCart(productID)

	require.Len(t, user.Cart.Items, 1)
	assert.Equal(t, other, user.Cart.Items[0].ProductID)
}

func TestRemoveFromCart_UnknownProductIsNoop(t *testing.T) {
	productID := primitive.NewObjectID()
	user := &User{Cart: Cart{Items: []CartItem{
		{ProductID: productID, Quantity: 2},
	}}}

	user.RemoveFromCart(primitive.NewObjectID())

	require.Len(t, user.Cart.Items, 1)
	assert.Equal(t, productID, user.Cart.Items[0].ProductID)
	assert.Equal(t, 2, user.Cart.Items[0].Quantity)
}

func TestClearCart(t *testing.T) {
	user := &User{Cart: Cart{Items: []CartItem{
		{ProductID: primitive.NewObjectID(), Quantity: 2},
		{ProductID: primitive.NewObjectID(), Quantity: 1},
	}}}

	user.ClearCart()

	assert.Empty(t, user.Cart.Items)
}
