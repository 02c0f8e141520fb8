package controllers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/config"
	"storefront/models"
)

func currentUserID(c *gin.Context) (primitive.ObjectID, error) {
	v, ok := c.Get("userId")
	if !ok {
		return primitive.NilObjectID, errors.New("no user in request context")
	}
	hex, ok := v.(string)
	if !ok {
		return primitive.NilObjectID, errors.New("no user in request context")
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid user id: %w", err)
	}
	return id, nil
}

func currentUser(ctx context.Context, c *gin.Context) (*models.User, error) {
	id, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return models.FindUserByID(ctx, id)
}

// baseURL builds redirect targets for the payment processor. BASE_URL
// wins when set; otherwise it is derived from the request like the
// storefront pages themselves.
func baseURL(c *gin.Context) string {
	if v := config.GetEnv("BASE_URL", ""); v != "" {
		return strings.TrimSuffix(v, "/")
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
