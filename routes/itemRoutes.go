package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nbui/fitstore-api/controllers"
	"github.com/nbui/fitstore-api/middlewares"
)

func ItemRoutes(server *gin.Engine, items *controllers.ItemController) {
	server.GET("/item", items.GetItems)
	server.GET("/item/:id", items.GetItem)
	server.POST("/item", middlewares.RequireAuth(), items.CreateItem)
	server.PUT("/item/:id", middlewares.RequireAuth(), items.UpdateItem)
	server.DELETE("/item/:id", middlewares.RequireAuth(), items.DeleteItem)
}
