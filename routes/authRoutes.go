package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nbui/fitstore-api/controllers"
)

func AuthRoutes(server *gin.Engine, auth *controllers.AuthController) {
	group := server.Group("/auth")
	{
		group.POST("/signup", auth.Signup)
		group.POST("/signin", auth.Signin)
		group.POST("/signout", auth.Signout)
		group.POST("/request-reset", auth.RequestReset)
		group.POST("/reset-password/:resetToken", auth.ResetPassword)
	}
}
