package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nbui/fitstore-api/controllers"
	"github.com/nbui/fitstore-api/middlewares"
)

func CartRoutes(server *gin.Engine, cart *controllers.CartController) {
	server.GET("/cart", middlewares.RequireAuth(), cart.GetCart)
	server.POST("/cart", middlewares.RequireAuth(), cart.AddToCart)
	server.DELETE("/cart/:id", middlewares.RequireAuth(), cart.RemoveFromCart)
}
