package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nbui/fitstore-api/models"
	"github.com/nbui/fitstore-api/services"
)

type AuthController struct {
	accounts *services.AccountService
}

func NewAuthController(accounts *services.AccountService) *AuthController {
	return &AuthController{accounts: accounts}
}

// Signup registers a user and signs them in via the session cookie.
func (c *AuthController) Signup(ctx *gin.Context) {
	var signUpData models.SignupData
	if err := ctx.ShouldBindJSON(&signUpData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, token, err := c.accounts.Signup(signUpData.Name, signUpData.Email, signUpData.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	setSessionCookie(ctx, token)
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"user": user})
}

func (c *AuthController) Signin(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, token, err := c.accounts.Signin(loginData.Email, loginData.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	setSessionCookie(ctx, token)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
}

// Signout clears the session cookie. There is no server-side session state,
// so this is always a no-op success, repeated calls included.
func (c *AuthController) Signout(ctx *gin.Context) {
	clearSessionCookie(ctx)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Goodbye!"})
}

func (c *AuthController) RequestReset(ctx *gin.Context) {
	var forgotPasswordData struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := ctx.ShouldBindJSON(&forgotPasswordData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := c.accounts.RequestReset(forgotPasswordData.Email); err != nil {
		respondError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Check your email for a password reset link."})
}

func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var resetPasswordData struct {
		Password        string `json:"password" binding:"required,min=8"`
		ConfirmPassword string `json:"confirmPassword" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&resetPasswordData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, token, err := c.accounts.ResetPassword(
		ctx.Param("resetToken"),
		resetPasswordData.Password,
		resetPasswordData.ConfirmPassword,
	)
	if err != nil {
		respondError(ctx, err)
		return
	}

	setSessionCookie(ctx, token)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
}
