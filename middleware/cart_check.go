package middleware

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"storefront/database"
	"storefront/logger"
	"storefront/models"
)

// CartCheck is the consistency check run before cart and checkout reads.
// It verifies that every cart entry still references an existing product
// and logs the stale ones. It never mutates the cart; stale entries are
// filtered at read time and reconciled on the next cart write.
func CartCheck(ctx context.Context, userID primitive.ObjectID) error {
	user, err := models.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if len(user.Cart.Items) == 0 {
		return nil
	}

	ids := make([]primitive.ObjectID, 0, len(user.Cart.Items))
	for _, item := range user.Cart.Items {
		ids = append(ids, item.ProductID)
	}

	count, err := database.ProductCollection.CountDocuments(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return fmt.Errorf("cart check: %w", err)
	}

	if count < int64(len(ids)) {
		logger.Log.Warn("cart references missing products",
			zap.String("userId", userID.Hex()),
			zap.Int("cartItems", len(ids)),
			zap.Int64("existingProducts", count),
		)
	}
	return nil
}
