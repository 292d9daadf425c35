package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nbui/fitstore-api/middlewares"
	"github.com/nbui/fitstore-api/services"
)

type UserController struct {
	accounts *services.AccountService
}

func NewUserController(accounts *services.AccountService) *UserController {
	return &UserController{accounts: accounts}
}

// Me returns the identified user, or null for anonymous requests. Anonymous
// is a normal state here, not an error.
func (c *UserController) Me(ctx *gin.Context) {
	user := middlewares.CurrentUser(ctx)
	if user == nil {
		sendJSONResponse(ctx, http.StatusOK, gin.H{"user": nil})
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
}

func (c *UserController) GetUsers(ctx *gin.Context) {
	users, err := c.accounts.Users(middlewares.CurrentUser(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"users": users})
}

func (c *UserController) UpdatePermissions(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse userId")
		return
	}

	var permissionData struct {
		Permissions []string `json:"permissions" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&permissionData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := c.accounts.UpdatePermissions(
		middlewares.CurrentUser(ctx),
		uint(userID),
		permissionData.Permissions,
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
}
