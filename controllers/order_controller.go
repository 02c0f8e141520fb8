package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/invoice"
	"storefront/models"
)

// Swappable in tests.
var findOrderByID = models.FindOrderByID

func PostOrder(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := models.PlaceOrder(ctx, userID); err != nil {
		c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, "/orders")
}

func GetOrders(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orders, err := models.FindOrdersByUser(ctx, userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "orders.html", gin.H{
		"PageTitle": "Your Orders",
		"Path":      "/orders",
		"Orders":    orders,
	})
}

// GetInvoice streams the order's invoice as a PDF. A missing order gets
// a JSON 404 body, unlike the HTML pages elsewhere.
func GetInvoice(c *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(c.Param("orderID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	order, err := findOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.Error(err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `filename="invoice.pdf"`)
	c.Status(http.StatusOK)

	if err := invoice.Render(c.Writer, order); err != nil {
		c.Error(err)
	}
}
