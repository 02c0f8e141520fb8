package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront/config"
	"storefront/database"
	"storefront/logger"
	"storefront/middleware"
	"storefront/payment"
	"storefront/routes"
)

func main() {
	config.LoadEnv()
	logger.Init()
	defer logger.Log.Sync()

	// Secrets must come from the environment, never from source.
	config.MustGetEnv("JWT_SECRET")
	payment.Init(config.MustGetEnv("STRIPE_SECRET_KEY"))

	uri := config.GetEnv("MONGO_URI", "mongodb://localhost:27017")
	dbName := config.GetEnv("DB_NAME", "storefront")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := database.Connect(ctx, uri, dbName); err != nil {
		logger.Log.Fatal("mongodb connection failed", zap.Error(err))
	}
	logger.Log.Info("connected to mongodb", zap.String("database", dbName))

	r := gin.Default()
	r.SetTrustedProxies(nil)
	r.LoadHTMLGlob("templates/*.html")
	r.Use(middleware.ErrorHandler())
	routes.RegisterRoutes(r)

	port := config.GetEnv("PORT", "8080")
	logger.Log.Info("starting http server", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Log.Fatal("http server stopped", zap.Error(err))
	}
}
