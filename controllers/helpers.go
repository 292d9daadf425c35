package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nbui/fitstore-api/apperrors"
	"github.com/nbui/fitstore-api/middlewares"
)

const (
	msgInvalidInput        = "invalid input"
	msgInternalServerError = "Internal server error"

	sessionCookiePath = "/"
	// 365 days, matching the token's intended lifetime.
	sessionCookieMaxAge = 365 * 24 * 60 * 60
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// respondError translates service errors into HTTP responses. Unrecognized
// errors are logged and hidden behind a generic 500.
func respondError(ctx *gin.Context, err error) {
	status := apperrors.StatusCode(err)
	if status == http.StatusInternalServerError {
		log.Println("internal error:", err)
		sendErrorResponse(ctx, status, msgInternalServerError)
		return
	}
	sendErrorResponse(ctx, status, err.Error())
}

func setSessionCookie(ctx *gin.Context, token string) {
	ctx.SetCookie(middlewares.SessionCookie, token, sessionCookieMaxAge, sessionCookiePath, "", false, true)
}

func clearSessionCookie(ctx *gin.Context) {
	ctx.SetCookie(middlewares.SessionCookie, "", -1, sessionCookiePath, "", false, true)
}
