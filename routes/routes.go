package routes

import (
	"github.com/gin-gonic/gin"

	"storefront/controllers"
	"storefront/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/", controllers.GetIndex)
	r.GET("/products", controllers.GetProducts)
	r.GET("/products/:productId", controllers.GetProduct)

	r.POST("/register", controllers.Register)
	r.POST("/login", controllers.Login)
	r.POST("/logout", controllers.Logout)

	authed := r.Group("/")
	authed.Use(middleware.Auth())
	{
		authed.GET("/cart", controllers.GetCart)
		authed.POST("/cart", controllers.PostCart)
		authed.POST("/cart/delete", controllers.PostCartDelete)

		authed.POST("/orders", controllers.PostOrder)
		authed.GET("/orders", controllers.GetOrders)
		authed.GET("/orders/:orderID/invoice", controllers.GetInvoice)

		authed.GET("/checkout", controllers.GetCheckout)
		authed.GET("/checkout/success", controllers.GetCheckoutSuccess)
		authed.GET("/checkout/cancel", controllers.GetCheckoutCancel)

		admin := authed.Group("/admin")
		admin.Use(middleware.Admin())
		{
			admin.POST("/products", controllers.CreateProduct)
			admin.GET("/products", controllers.GetProductsAdmin)
			admin.PUT("/products/:id", controllers.UpdateProduct)
			admin.DELETE("/products/:id", controllers.DeleteProduct)
		}
	}
}
