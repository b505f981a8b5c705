package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// buildRouter wires the storefront API routes.
func buildRouter(logger *log.Logger, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	// The storefront frontend is served from a different origin.
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Storage))

	api := router.Group("/api")
	api.GET("/products", listProductsHandler(deps.Catalog))
	api.GET("/cart", getCartHandler(deps.Cart))
	api.POST("/cart/items", addItemHandler(deps.Cart))
	api.PATCH("/cart/items/:id", setQtyHandler(deps.Cart))
	api.DELETE("/cart/items/:id", removeItemHandler(deps.Cart))
	api.DELETE("/cart", clearCartHandler(deps.Cart))
	api.POST("/checkout", checkoutHandler(deps.Checkout))

	return router
}
