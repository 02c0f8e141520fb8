package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/middleware"
	"storefront/models"
)

func GetCart(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	userID, err := currentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := middleware.CartCheck(ctx, userID); err != nil {
		c.Error(err)
		return
	}

	user, err := models.FindUserByID(ctx, userID)
	if err != nil {
		c.Error(err)
		return
	}

	items, err := models.ResolveCart(ctx, user)
	if err != nil {
		c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "cart.html", gin.H{
		"PageTitle": "Your Cart",
		"Path":      "/cart",
		"Products":  items,
		"Total":     models.CartTotal(items),
	})
}

func PostCart(c *gin.Context) {
	productID, err := primitive.ObjectIDFromHex(c.PostForm("productId"))
	if err != nil {
		c.Error(err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	product, err := models.FindProductByID(ctx, productID)
	if err != nil {
		c.Error(err)
		return
	}

	user, err := currentUser(ctx, c)
	if err != nil {
		c.Error(err)
		return
	}

	user.AddToCart(product.ID)
	if err := user.SaveCart(ctx); err != nil {
		c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, "/cart")
}

func PostCartDelete(c *gin.Context) {
	productID, err := primitive.ObjectIDFromHex(c.PostForm("productId"))
	if err != nil {
		c.Error(err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := currentUser(ctx, c)
	if err != nil {
		c.Error(err)
		return
	}

	user.RemoveFromCart(productID)
	if err := user.SaveCart(ctx); err != nil {
		c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, "/cart")
}
