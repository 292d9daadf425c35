package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nbui/fitstore-api/controllers"
	"github.com/nbui/fitstore-api/middlewares"
)

func OrderRoutes(server *gin.Engine, orders *controllers.OrderController) {
	server.POST("/order", middlewares.RequireAuth(), orders.Checkout)
	server.GET("/order", middlewares.RequireAuth(), orders.GetOrders)
	server.GET("/order/:orderId", middlewares.RequireAuth(), orders.GetOrder)
}
