package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")

	user := api.Group("/user")
	user.POST("/create", createUserHandler(deps.UserSvc))
	user.GET("/id/:id", findUserByIDHandler(deps.UserSvc))
	user.GET("/:username", findUserByNameHandler(deps.UserSvc))

	item := api.Group("/item")
	item.GET("", listItemsHandler(deps.ItemSvc))
	item.GET("/:id", findItemByIDHandler(deps.ItemSvc))
	item.GET("/name/:name", findItemsByNameHandler(deps.ItemSvc))

	cart := api.Group("/cart")
	cart.POST("/addToCart", addToCartHandler(deps.CartSvc))
	cart.POST("/removeFromCart", removeFromCartHandler(deps.CartSvc))

	order := api.Group("/order")
	order.POST("/submit/:username", submitOrderHandler(deps.OrderSvc))
	order.GET("/history/:username", orderHistoryHandler(deps.OrderSvc))

	return router
}
