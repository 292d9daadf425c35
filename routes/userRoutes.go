package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nbui/fitstore-api/controllers"
)

func UserRoutes(server *gin.Engine, users *controllers.UserController) {
	server.GET("/me", users.Me)
	server.GET("/user", users.GetUsers)
	server.PUT("/user/:userId/permissions", users.UpdatePermissions)
}
