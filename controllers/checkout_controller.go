package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/config"
	"storefront/middleware"
	"storefront/models"
	"storefront/payment"
)

// Swappable in tests.
var (
	checkoutSessions    payment.SessionCreator = payment.StripeGateway{}
	checkoutCartCheck                          = middleware.CartCheck
	checkoutUserLookup                         = models.FindUserByID
	checkoutCartResolve                        = models.ResolveCart
)

// GetCheckout creates a hosted payment session for the current cart and
// renders the checkout page with the session id for client-side redirect.
func GetCheckout(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := currentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := checkoutCartCheck(ctx, userID); err != nil {
		c.Error(err)
		return
	}

	user, err := checkoutUserLookup(ctx, userID)
	if err != nil {
		c.Error(err)
		return
	}

	items, err := checkoutCartResolve(ctx, user)
	if err != nil {
		c.Error(err)
		return
	}

	base := baseURL(c)
	sessionID, err := checkoutSessions.CreateSession(ctx, items, base+"/checkout/success", base+"/checkout/cancel")
	if err != nil {
		c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "checkout.html", gin.H{
		"PageTitle":      "Checkout",
		"Path":           "/checkout",
		"Products":       items,
		"Total":          models.CartTotal(items),
		"SessionID":      sessionID,
		"PublishableKey": config.GetEnv("STRIPE_PUBLISHABLE_KEY", ""),
	})
}

// GetCheckoutSuccess places the order through the same snapshot-and-clear
// unit as PostOrder and renders the confirmation page.
func GetCheckoutSuccess(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	order, err := models.PlaceOrder(ctx, userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "checkout-success.html", gin.H{
		"PageTitle": "Thank you!",
		"Path":      "/checkout/success",
		"Order":     order,
	})
}

func GetCheckoutCancel(c *gin.Context) {
	c.HTML(http.StatusOK, "checkout-cancel.html", gin.H{
		"PageTitle": "Checkout cancelled",
		"Path":      "/checkout/cancel",
	})
}
