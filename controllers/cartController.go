package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nbui/fitstore-api/middlewares"
	"github.com/nbui/fitstore-api/services"
)

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

func (c *CartController) AddToCart(ctx *gin.Context) {
	var body struct {
		ItemID uint `json:"itemId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	line, err := c.cart.AddToCart(middlewares.CurrentUser(ctx), body.ItemID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"cartItem": line})
}

func (c *CartController) RemoveFromCart(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse cart item id")
		return
	}

	line, err := c.cart.RemoveFromCart(middlewares.CurrentUser(ctx), uint(id))
	if err != nil {
		respondError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"cartItem": line})
}

func (c *CartController) GetCart(ctx *gin.Context) {
	lines, err := c.cart.Cart(middlewares.CurrentUser(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": lines})
}
