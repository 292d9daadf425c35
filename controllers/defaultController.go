package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Fitstore API is running."})
}
