package controllers

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/models"
)

const productsPerPage = 3

// paginate turns the raw page query parameter into an offset and the
// total page count. Absent or invalid page numbers default to 1.
func paginate(pageParam string, total int64) (page int, offset int64, pageCount int) {
	page, err := strconv.Atoi(pageParam)
	if err != nil || page < 1 {
		page = 1
	}
	offset = int64(page-1) * productsPerPage
	pageCount = int(math.Ceil(float64(total) / float64(productsPerPage)))
	return page, offset, pageCount
}

func GetIndex(c *gin.Context) {
	renderProductPage(c, "index.html", "Shop", "/")
}

func GetProducts(c *gin.Context) {
	renderProductPage(c, "product-list.html", "All Products", "/products")
}

func renderProductPage(c *gin.Context, template, title, path string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	total, err := models.CountProducts(ctx)
	if err != nil {
		c.Error(err)
		return
	}

	page, offset, pageCount := paginate(c.Query("page"), total)

	products, err := models.FindProductsPage(ctx, offset, productsPerPage)
	if err != nil {
		c.Error(err)
		return
	}

	pages := make([]int, pageCount)
	for i := range pages {
		pages[i] = i + 1
	}

	c.HTML(http.StatusOK, template, gin.H{
		"PageTitle":   title,
		"Path":        path,
		"Prods":       products,
		"PageCount":   pageCount,
		"Pages":       pages,
		"CurrentPage": page,
	})
}

func GetProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.Error(err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	product, err := models.FindProductByID(ctx, id)
	if err != nil {
		c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "product-detail.html", gin.H{
		"PageTitle": product.Title,
		"Path":      "/products",
		"Product":   product,
	})
}
